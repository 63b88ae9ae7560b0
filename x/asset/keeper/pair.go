package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"go.opentelemetry.io/otel/attribute"

	"github.com/paw-chain/vault-network/x/asset/types"
)

const (
	// DefaultPairsLimit is the page size used when none is given.
	DefaultPairsLimit uint32 = 10
	// MaxPairsLimit caps the page size of GetPairs.
	MaxPairsLimit uint32 = 30
)

// SetPair registers a pair. The pair is stored in canonical form and can be
// looked up with its assets in either order.
func (k Keeper) SetPair(ctx context.Context, pair types.PairInfo) error {
	if err := pair.Validate(); err != nil {
		return err
	}

	raw, err := pair.ToRaw(k.addressCodec)
	if err != nil {
		return err
	}

	key, err := types.PairKey(raw.AssetInfos)
	if err != nil {
		return err
	}

	store := k.storeService.OpenKVStore(ctx)
	exists, err := store.Has(key)
	if err != nil {
		return err
	}
	if exists {
		return errorsmod.Wrapf(types.ErrPairAlreadyExists, "%s-%s", pair.AssetInfos[0], pair.AssetInfos[1])
	}

	bz, err := json.Marshal(raw)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal pair")
	}
	if err := store.Set(key, bz); err != nil {
		return err
	}

	k.metrics.PairsRegistered.Inc()
	k.logger.Info("pair registered",
		"asset_0", pair.AssetInfos[0].String(),
		"asset_1", pair.AssetInfos[1].String(),
		"contract", pair.ContractAddr,
	)
	return nil
}

// GetPairRaw returns the stored canonical form of the pair of assetInfos.
func (k Keeper) GetPairRaw(ctx context.Context, assetInfos [2]types.AssetInfo) (types.PairInfoRaw, error) {
	key, err := k.pairKey(assetInfos)
	if err != nil {
		return types.PairInfoRaw{}, err
	}

	bz, err := k.storeService.OpenKVStore(ctx).Get(key)
	if err != nil {
		return types.PairInfoRaw{}, err
	}
	if bz == nil {
		return types.PairInfoRaw{}, errorsmod.Wrapf(types.ErrPairNotFound, "%s-%s", assetInfos[0], assetInfos[1])
	}

	var raw types.PairInfoRaw
	if err := json.Unmarshal(bz, &raw); err != nil {
		return types.PairInfoRaw{}, errorsmod.Wrap(err, "failed to unmarshal pair")
	}
	return raw, nil
}

// GetPair returns the pair of assetInfos in human readable form.
func (k Keeper) GetPair(ctx context.Context, assetInfos [2]types.AssetInfo) (types.PairInfo, error) {
	raw, err := k.GetPairRaw(ctx, assetInfos)
	if err != nil {
		return types.PairInfo{}, err
	}
	return raw.ToNormal(k.addressCodec)
}

// GetPairs returns up to limit pairs in key order, starting after the pair of
// startAfter when it is given.
func (k Keeper) GetPairs(ctx context.Context, startAfter *[2]types.AssetInfo, limit uint32) ([]types.PairInfo, error) {
	switch {
	case limit == 0:
		limit = DefaultPairsLimit
	case limit > MaxPairsLimit:
		limit = MaxPairsLimit
	}

	start := types.PairKeyPrefix
	if startAfter != nil {
		key, err := k.pairKey(*startAfter)
		if err != nil {
			return nil, err
		}
		start = append(key, 0x00)
	}

	iter, err := k.storeService.OpenKVStore(ctx).Iterator(start, storetypes.PrefixEndBytes(types.PairKeyPrefix))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	pairs := make([]types.PairInfo, 0, limit)
	for ; iter.Valid() && uint32(len(pairs)) < limit; iter.Next() {
		var raw types.PairInfoRaw
		if err := json.Unmarshal(iter.Value(), &raw); err != nil {
			return nil, errorsmod.Wrap(err, "failed to unmarshal pair")
		}
		pair, err := raw.ToNormal(k.addressCodec)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// QueryPairPools returns the reserves of the registered pair of assetInfos,
// in the order the pair was registered with.
func (k Keeper) QueryPairPools(ctx context.Context, assetInfos [2]types.AssetInfo) (pools [2]types.Asset, err error) {
	ctx, span := startSpan(ctx, "asset.QueryPairPools",
		attribute.String("asset_0", assetInfos[0].String()),
		attribute.String("asset_1", assetInfos[1].String()),
	)
	defer func() { endSpan(span, err) }()

	raw, err := k.GetPairRaw(ctx, assetInfos)
	if err != nil {
		return [2]types.Asset{}, err
	}

	contractAddr, err := k.addressCodec.Humanize(raw.ContractAddr)
	if err != nil {
		return [2]types.Asset{}, err
	}
	return raw.QueryPools(ctx, k, k.addressCodec, contractAddr)
}

func (k Keeper) pairKey(assetInfos [2]types.AssetInfo) ([]byte, error) {
	var raw [2]types.AssetInfoRaw
	for i, info := range assetInfos {
		r, err := info.ToRaw(k.addressCodec)
		if err != nil {
			return nil, err
		}
		raw[i] = r
	}
	return types.PairKey(raw)
}
