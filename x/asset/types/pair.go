package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
)

// PairInfo describes a two asset pool: the pair contract, its liquidity token
// and the decimal precision of each asset.
type PairInfo struct {
	AssetInfos     [2]AssetInfo `json:"asset_infos"`
	ContractAddr   string       `json:"contract_addr"`
	LiquidityToken string       `json:"liquidity_token"`
	AssetDecimals  [2]uint8     `json:"asset_decimals"`
}

// Validate checks both asset infos and that they name different assets.
func (p PairInfo) Validate() error {
	for i, info := range p.AssetInfos {
		if err := info.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidPair, "asset %d: %s", i, err)
		}
	}
	if p.AssetInfos[0].Equal(p.AssetInfos[1]) {
		return errorsmod.Wrapf(ErrInvalidPair, "duplicate asset %s", p.AssetInfos[0])
	}
	if p.ContractAddr == "" {
		return errorsmod.Wrap(ErrInvalidPair, "empty contract address")
	}
	if p.LiquidityToken == "" {
		return errorsmod.Wrap(ErrInvalidPair, "empty liquidity token")
	}
	return nil
}

// ToRaw canonicalizes both asset infos and both addresses.
func (p PairInfo) ToRaw(codec AddressCodec) (PairInfoRaw, error) {
	contractAddr, err := codec.Canonicalize(p.ContractAddr)
	if err != nil {
		return PairInfoRaw{}, err
	}
	liquidityToken, err := codec.Canonicalize(p.LiquidityToken)
	if err != nil {
		return PairInfoRaw{}, err
	}

	var infos [2]AssetInfoRaw
	for i, info := range p.AssetInfos {
		if infos[i], err = info.ToRaw(codec); err != nil {
			return PairInfoRaw{}, err
		}
	}

	return PairInfoRaw{
		AssetInfos:     infos,
		ContractAddr:   contractAddr,
		LiquidityToken: liquidityToken,
		AssetDecimals:  p.AssetDecimals,
	}, nil
}

// PairInfoRaw is the persisted form of PairInfo.
type PairInfoRaw struct {
	AssetInfos     [2]AssetInfoRaw `json:"asset_infos"`
	ContractAddr   CanonicalAddr   `json:"contract_addr"`
	LiquidityToken CanonicalAddr   `json:"liquidity_token"`
	AssetDecimals  [2]uint8        `json:"asset_decimals"`
}

// ToNormal humanizes the addresses and asset infos. The first failure is returned.
func (p PairInfoRaw) ToNormal(codec AddressCodec) (PairInfo, error) {
	liquidityToken, err := codec.Humanize(p.LiquidityToken)
	if err != nil {
		return PairInfo{}, err
	}
	contractAddr, err := codec.Humanize(p.ContractAddr)
	if err != nil {
		return PairInfo{}, err
	}

	var infos [2]AssetInfo
	for i, info := range p.AssetInfos {
		if infos[i], err = info.ToNormal(codec); err != nil {
			return PairInfo{}, err
		}
	}

	return PairInfo{
		AssetInfos:     infos,
		ContractAddr:   contractAddr,
		LiquidityToken: liquidityToken,
		AssetDecimals:  p.AssetDecimals,
	}, nil
}

// QueryPools returns the reserves held by contractAddr, in the order of AssetInfos.
func (p PairInfoRaw) QueryPools(ctx context.Context, querier BalanceQuerier, codec AddressCodec, contractAddr string) ([2]Asset, error) {
	var infos [2]AssetInfo
	for i, raw := range p.AssetInfos {
		info, err := raw.ToNormal(codec)
		if err != nil {
			return [2]Asset{}, err
		}
		infos[i] = info
	}

	var assets [2]Asset
	for i, info := range infos {
		amount, err := info.QueryPool(ctx, querier, codec, contractAddr)
		if err != nil {
			return [2]Asset{}, err
		}
		assets[i] = Asset{Info: info, Amount: amount}
	}
	return assets, nil
}
