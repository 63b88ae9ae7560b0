package types

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// AssetInfo identifies a kind of value: a native denom or a token contract.
// Exactly one of the variants is set. The token contract address usually comes
// from a CW20 receive hook, so it is trusted to be valid unless stated otherwise.
type AssetInfo struct {
	Token       *TokenAssetInfo  `json:"token,omitempty"`
	NativeToken *NativeAssetInfo `json:"native_token,omitempty"`
}

// TokenAssetInfo is the contract token variant of AssetInfo.
type TokenAssetInfo struct {
	ContractAddr string `json:"contract_addr"`
}

// NativeAssetInfo is the native denom variant of AssetInfo.
type NativeAssetInfo struct {
	Denom string `json:"denom"`
}

// NewTokenAssetInfo returns an AssetInfo for the token contract at contractAddr.
func NewTokenAssetInfo(contractAddr string) AssetInfo {
	return AssetInfo{Token: &TokenAssetInfo{ContractAddr: contractAddr}}
}

// NewNativeAssetInfo returns an AssetInfo for a native denom.
func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{NativeToken: &NativeAssetInfo{Denom: denom}}
}

// IsNativeToken reports whether the asset is held by the bank ledger.
func (a AssetInfo) IsNativeToken() bool {
	return a.NativeToken != nil
}

// Validate checks that exactly one variant is set and its identifier is not empty.
func (a AssetInfo) Validate() error {
	switch {
	case a.Token != nil && a.NativeToken != nil:
		return errorsmod.Wrap(ErrInvalidAssetInfo, "both token and native_token are set")
	case a.Token != nil:
		if strings.TrimSpace(a.Token.ContractAddr) == "" {
			return errorsmod.Wrap(ErrInvalidAssetInfo, "empty contract address")
		}
	case a.NativeToken != nil:
		if strings.TrimSpace(a.NativeToken.Denom) == "" {
			return errorsmod.Wrap(ErrInvalidAssetInfo, "empty denom")
		}
	default:
		return errorsmod.Wrap(ErrInvalidAssetInfo, "neither token nor native_token is set")
	}
	return nil
}

// String returns the denom or the contract address.
func (a AssetInfo) String() string {
	switch {
	case a.Token != nil:
		return a.Token.ContractAddr
	case a.NativeToken != nil:
		return a.NativeToken.Denom
	default:
		return ""
	}
}

// Equal reports whether both values name the same asset. A native denom and a
// token address never match, whatever their strings. Bech32 is case
// insensitive, so token addresses differing only in case are equal.
func (a AssetInfo) Equal(other AssetInfo) bool {
	switch {
	case a.Token != nil:
		return other.Token != nil && strings.EqualFold(a.Token.ContractAddr, other.Token.ContractAddr)
	case a.NativeToken != nil:
		return other.NativeToken != nil && a.NativeToken.Denom == other.NativeToken.Denom
	default:
		return false
	}
}

// ToRaw converts the asset info to its canonical form.
func (a AssetInfo) ToRaw(codec AddressCodec) (AssetInfoRaw, error) {
	switch {
	case a.Token != nil:
		addr, err := codec.Canonicalize(a.Token.ContractAddr)
		if err != nil {
			return AssetInfoRaw{}, err
		}
		return NewTokenAssetInfoRaw(addr), nil
	case a.NativeToken != nil:
		return NewNativeAssetInfoRaw(a.NativeToken.Denom), nil
	default:
		return AssetInfoRaw{}, a.Validate()
	}
}

// QueryPool returns the amount of this asset held by poolAddr.
func (a AssetInfo) QueryPool(ctx context.Context, querier BalanceQuerier, codec AddressCodec, poolAddr string) (sdkmath.Int, error) {
	switch {
	case a.Token != nil:
		contractAddr, err := codec.Validate(a.Token.ContractAddr)
		if err != nil {
			return sdkmath.Int{}, err
		}
		return querier.QueryTokenBalance(ctx, contractAddr, poolAddr)
	case a.NativeToken != nil:
		return querier.QueryBalance(ctx, poolAddr, a.NativeToken.Denom)
	default:
		return sdkmath.Int{}, a.Validate()
	}
}

// QueryDecimals returns the decimal precision of the asset. For native denoms
// the precision is looked up in the registry at accountAddr.
func (a AssetInfo) QueryDecimals(ctx context.Context, accountAddr string, querier BalanceQuerier) (uint8, error) {
	switch {
	case a.NativeToken != nil:
		return querier.QueryNativeDecimals(ctx, accountAddr, a.NativeToken.Denom)
	case a.Token != nil:
		info, err := querier.QueryTokenInfo(ctx, a.Token.ContractAddr)
		if err != nil {
			return 0, err
		}
		return info.Decimals, nil
	default:
		return 0, a.Validate()
	}
}

// GetLabel returns a display label for the asset, used to name pairs and LP
// tokens: the token symbol for contract tokens, a shortened form for IBC
// denoms and the denom itself otherwise.
func (a AssetInfo) GetLabel(ctx context.Context, querier BalanceQuerier, codec AddressCodec) (string, error) {
	switch {
	case a.Token != nil:
		contractAddr, err := codec.Validate(a.Token.ContractAddr)
		if err != nil {
			return "", err
		}
		info, err := querier.QueryTokenInfo(ctx, contractAddr)
		if err != nil {
			return "", err
		}
		return info.Symbol, nil
	case a.NativeToken != nil:
		if label, ok := IBCTokenLabel(a.NativeToken.Denom); ok {
			return label, nil
		}
		return a.NativeToken.Denom, nil
	default:
		return "", a.Validate()
	}
}
