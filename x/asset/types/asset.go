package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Asset is an amount of a given asset kind.
type Asset struct {
	Info   AssetInfo   `json:"info"`
	Amount sdkmath.Int `json:"amount"`
}

// NewAsset creates an asset of the given kind and amount.
func NewAsset(info AssetInfo, amount sdkmath.Int) Asset {
	return Asset{Info: info, Amount: amount}
}

// String returns the amount followed by the denom or contract address.
func (a Asset) String() string {
	return a.Amount.String() + a.Info.String()
}

// Validate checks the asset info and that the amount is set and not negative.
func (a Asset) Validate() error {
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Amount.IsNil() {
		return errorsmod.Wrap(ErrInvalidAmount, "amount is not set")
	}
	if a.Amount.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidAmount, "negative amount %s", a.Amount)
	}
	return nil
}

// IsNativeToken reports whether the asset is held by the bank ledger.
func (a Asset) IsNativeToken() bool {
	return a.Info.IsNativeToken()
}

// IntoMsg builds the message that transfers the asset to recipient: a bank
// send for native denoms, a CW20 transfer for tokens.
func (a Asset) IntoMsg(recipient string) (CosmosMsg, error) {
	switch {
	case a.Info.Token != nil:
		msg, err := NewCw20TransferMsg(recipient, a.Amount)
		if err != nil {
			return CosmosMsg{}, err
		}
		return CosmosMsg{
			Wasm: &WasmMsg{
				Execute: &ExecuteMsg{
					ContractAddr: a.Info.Token.ContractAddr,
					Msg:          msg,
					Funds:        sdk.Coins{},
				},
			},
		}, nil
	case a.Info.NativeToken != nil:
		return CosmosMsg{
			Bank: &BankMsg{
				Send: &SendMsg{
					ToAddress: recipient,
					Amount:    sdk.Coins{sdk.Coin{Denom: a.Info.NativeToken.Denom, Amount: a.Amount}},
				},
			},
		}, nil
	default:
		return CosmosMsg{}, a.Info.Validate()
	}
}

// IntoSubMsg wraps IntoMsg in a SubMsg that never replies.
func (a Asset) IntoSubMsg(recipient string) (SubMsg, error) {
	msg, err := a.IntoMsg(recipient)
	if err != nil {
		return SubMsg{}, err
	}
	return NewSubMsg(msg), nil
}

// AssertSentNativeTokenBalance checks that the native funds attached to a call
// carry exactly the asset amount. Token assets never expect native funds.
// A missing denom in funds is only accepted for a zero amount.
func (a Asset) AssertSentNativeTokenBalance(funds sdk.Coins) error {
	if a.Info.NativeToken == nil {
		return nil
	}

	if a.Amount.IsNil() {
		return errorsmod.Wrap(ErrInvalidAmount, "amount is not set")
	}

	denom := a.Info.NativeToken.Denom
	for _, coin := range funds {
		if coin.Denom != denom {
			continue
		}
		if coin.Amount.IsNil() || !a.Amount.Equal(coin.Amount) {
			return errorsmod.Wrapf(ErrBalanceMismatch, "expected %s%s, got %s", a.Amount, denom, coin)
		}
		return nil
	}

	if !a.Amount.IsZero() {
		return errorsmod.Wrapf(ErrBalanceMismatch, "expected %s%s, got none", a.Amount, denom)
	}
	return nil
}

// ToRaw converts the asset to its canonical form. The amount is unchanged.
func (a Asset) ToRaw(codec AddressCodec) (AssetRaw, error) {
	info, err := a.Info.ToRaw(codec)
	if err != nil {
		return AssetRaw{}, err
	}
	return AssetRaw{Info: info, Amount: a.Amount}, nil
}

// GetID returns the denom or contract address. It is used as a map key, for
// example when subtracting protocol fees collected for an asset of a pool.
func (a Asset) GetID() string {
	return a.Info.String()
}
