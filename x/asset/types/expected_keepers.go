package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// AddressCodec converts between human readable and canonical addresses.
type AddressCodec interface {
	// Canonicalize decodes a human readable address into its canonical bytes.
	Canonicalize(human string) (CanonicalAddr, error)

	// Humanize encodes canonical bytes into the human readable form.
	Humanize(canonical CanonicalAddr) (string, error)

	// Validate checks that human is a well formed address in normalized form
	// and returns it.
	Validate(human string) (string, error)
}

// BalanceQuerier answers balance and metadata questions about both asset kinds.
// Native lookups go to the bank ledger, token lookups to the token contract.
type BalanceQuerier interface {
	// QueryBalance returns the native balance of holder in denom.
	QueryBalance(ctx context.Context, holder, denom string) (sdkmath.Int, error)

	// QueryTokenBalance returns the balance of holder in the token contract.
	QueryTokenBalance(ctx context.Context, tokenAddr, holder string) (sdkmath.Int, error)

	// QueryNativeDecimals returns the registered decimal precision of denom.
	// account is the registry (usually the pair factory) holding the record.
	QueryNativeDecimals(ctx context.Context, account, denom string) (uint8, error)

	// QueryTokenInfo returns the token contract metadata.
	QueryTokenInfo(ctx context.Context, tokenAddr string) (TokenInfoResponse, error)
}

// BankKeeper defines the expected bank keeper used for native balances.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool)
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// WasmKeeper defines the expected contract keeper used for token contracts.
type WasmKeeper interface {
	// QuerySmart runs a JSON query against a contract and returns the raw JSON response.
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)

	// Execute runs a JSON execute message against a contract on behalf of caller.
	Execute(ctx context.Context, contractAddr, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)
}
