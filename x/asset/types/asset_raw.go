package types

import (
	sdkmath "cosmossdk.io/math"
)

// AssetInfoRaw is the persisted form of AssetInfo, with the token contract
// stored as a canonical address. The variant tags keep the PascalCase names
// used by existing stored records.
type AssetInfoRaw struct {
	Token       *TokenAssetInfoRaw  `json:"Token,omitempty"`
	NativeToken *NativeAssetInfoRaw `json:"NativeToken,omitempty"`
}

// TokenAssetInfoRaw is the contract token variant of AssetInfoRaw.
type TokenAssetInfoRaw struct {
	ContractAddr CanonicalAddr `json:"contract_addr"`
}

// NativeAssetInfoRaw is the native denom variant of AssetInfoRaw.
type NativeAssetInfoRaw struct {
	Denom string `json:"denom"`
}

// NewTokenAssetInfoRaw returns an AssetInfoRaw for the token contract at contractAddr.
func NewTokenAssetInfoRaw(contractAddr CanonicalAddr) AssetInfoRaw {
	return AssetInfoRaw{Token: &TokenAssetInfoRaw{ContractAddr: contractAddr}}
}

// NewNativeAssetInfoRaw returns an AssetInfoRaw for a native denom.
func NewNativeAssetInfoRaw(denom string) AssetInfoRaw {
	return AssetInfoRaw{NativeToken: &NativeAssetInfoRaw{Denom: denom}}
}

// ToNormal converts back to the human readable form.
func (a AssetInfoRaw) ToNormal(codec AddressCodec) (AssetInfo, error) {
	switch {
	case a.Token != nil:
		addr, err := codec.Humanize(a.Token.ContractAddr)
		if err != nil {
			return AssetInfo{}, err
		}
		return NewTokenAssetInfo(addr), nil
	case a.NativeToken != nil:
		return NewNativeAssetInfo(a.NativeToken.Denom), nil
	default:
		return AssetInfo{}, ErrInvalidAssetInfo.Wrap("neither Token nor NativeToken is set")
	}
}

// AsBytes returns the denom bytes or the canonical contract address, for use
// as a storage key. The length is not fixed.
func (a AssetInfoRaw) AsBytes() []byte {
	switch {
	case a.Token != nil:
		return a.Token.ContractAddr
	case a.NativeToken != nil:
		return []byte(a.NativeToken.Denom)
	default:
		return nil
	}
}

// Equal compares denoms, or canonical address bytes for tokens.
func (a AssetInfoRaw) Equal(other AssetInfoRaw) bool {
	switch {
	case a.Token != nil:
		return other.Token != nil && a.Token.ContractAddr.Equals(other.Token.ContractAddr)
	case a.NativeToken != nil:
		return other.NativeToken != nil && a.NativeToken.Denom == other.NativeToken.Denom
	default:
		return false
	}
}

// AssetRaw is the persisted form of Asset.
type AssetRaw struct {
	Info   AssetInfoRaw `json:"info"`
	Amount sdkmath.Int  `json:"amount"`
}

// ToNormal converts back to the human readable form. The amount is unchanged.
func (a AssetRaw) ToNormal(codec AddressCodec) (Asset, error) {
	info, err := a.Info.ToNormal(codec)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Info: info, Amount: a.Amount}, nil
}
