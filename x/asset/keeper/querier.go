package keeper

import (
	"context"
	"encoding/json"
	"math"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/vault-network/x/asset/types"
)

var _ types.BalanceQuerier = Keeper{}

const (
	queryKindNative         = "native_balance"
	queryKindToken          = "token_balance"
	queryKindNativeDecimals = "native_decimals"
	queryKindTokenInfo      = "token_info"
)

// QueryBalance implements types.BalanceQuerier using the bank keeper.
func (k Keeper) QueryBalance(ctx context.Context, holder, denom string) (amount sdkmath.Int, err error) {
	defer func() { k.metrics.QueriesTotal.WithLabelValues(queryKindNative, statusLabel(err)).Inc() }()

	holderAddr, err := k.accAddress(holder)
	if err != nil {
		return sdkmath.Int{}, err
	}

	balance := k.bankKeeper.GetBalance(ctx, holderAddr, denom)
	k.logger.Debug("queried native balance", "holder", holder, "denom", denom, "amount", balance.Amount)
	return balance.Amount, nil
}

// QueryTokenBalance implements types.BalanceQuerier with a CW20 balance query.
func (k Keeper) QueryTokenBalance(ctx context.Context, tokenAddr, holder string) (amount sdkmath.Int, err error) {
	defer func() { k.metrics.QueriesTotal.WithLabelValues(queryKindToken, statusLabel(err)).Inc() }()

	var resp types.Cw20BalanceResponse
	err = k.querySmart(ctx, tokenAddr, types.Cw20QueryMsg{
		Balance: &types.Cw20BalanceQuery{Address: holder},
	}, &resp)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if resp.Balance.IsNil() {
		return sdkmath.ZeroInt(), nil
	}

	k.logger.Debug("queried token balance", "token", tokenAddr, "holder", holder, "amount", resp.Balance)
	return resp.Balance, nil
}

// QueryTokenInfo implements types.BalanceQuerier with a CW20 token_info query.
func (k Keeper) QueryTokenInfo(ctx context.Context, tokenAddr string) (info types.TokenInfoResponse, err error) {
	defer func() { k.metrics.QueriesTotal.WithLabelValues(queryKindTokenInfo, statusLabel(err)).Inc() }()

	err = k.querySmart(ctx, tokenAddr, types.Cw20QueryMsg{
		TokenInfo: &types.Cw20TokenInfoQuery{},
	}, &info)
	if err != nil {
		return types.TokenInfoResponse{}, err
	}
	return info, nil
}

// QueryNativeDecimals implements types.BalanceQuerier. The registry contract
// at account is asked first; when it has no record the bank denom metadata
// is used, taking the exponent of the display unit.
func (k Keeper) QueryNativeDecimals(ctx context.Context, account, denom string) (decimals uint8, err error) {
	defer func() { k.metrics.QueriesTotal.WithLabelValues(queryKindNativeDecimals, statusLabel(err)).Inc() }()

	var resp types.NativeTokenDecimalsResponse
	registryErr := k.querySmart(ctx, account, types.FactoryQueryMsg{
		NativeTokenDecimals: &types.NativeTokenDecimalsQuery{Denom: denom},
	}, &resp)
	if registryErr == nil {
		return resp.Decimals, nil
	}

	k.logger.Debug("native decimals not found in registry, falling back to bank metadata",
		"registry", account, "denom", denom, "error", registryErr)

	metadata, found := k.bankKeeper.GetDenomMetaData(ctx, denom)
	if !found {
		return 0, errorsmod.Wrapf(types.ErrQuery, "no decimals registered for %s: %s", denom, registryErr)
	}

	display := metadata.Display
	for _, unit := range metadata.DenomUnits {
		if unit.Denom != display {
			continue
		}
		if unit.Exponent > math.MaxUint8 {
			return 0, errorsmod.Wrapf(types.ErrQuery, "exponent %d of %s out of range", unit.Exponent, denom)
		}
		return uint8(unit.Exponent), nil
	}
	return 0, errorsmod.Wrapf(types.ErrQuery, "display unit %q missing from metadata of %s", display, denom)
}

func (k Keeper) querySmart(ctx context.Context, contract string, req, resp any) error {
	contractAddr, err := k.accAddress(contract)
	if err != nil {
		return err
	}

	bz, err := json.Marshal(req)
	if err != nil {
		return errorsmod.Wrap(types.ErrQuery, err.Error())
	}

	out, err := k.wasmKeeper.QuerySmart(ctx, contractAddr, bz)
	if err != nil {
		return errorsmod.Wrapf(types.ErrQuery, "contract %s: %s", contract, err)
	}

	if err := json.Unmarshal(out, resp); err != nil {
		return errorsmod.Wrapf(types.ErrQuery, "decode response of %s: %s", contract, err)
	}
	return nil
}

func (k Keeper) accAddress(human string) (sdk.AccAddress, error) {
	canonical, err := k.addressCodec.Canonicalize(human)
	if err != nil {
		return nil, err
	}
	return sdk.AccAddress(canonical), nil
}
