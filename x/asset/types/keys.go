package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "asset"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	PairKeyPrefix = []byte{0x01} // prefix for pair info store
)

// PairKey returns the store key for a pair. The two asset keys are sorted so
// that both orderings of the same assets resolve to one entry, and each one is
// length prefixed so that different splits of the same bytes never collide.
func PairKey(infos [2]AssetInfoRaw) ([]byte, error) {
	a, b := infos[0].AsBytes(), infos[1].AsBytes()
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}

	prefixedA, err := address.LengthPrefix(a)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidPair, err.Error())
	}
	prefixedB, err := address.LengthPrefix(b)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidPair, err.Error())
	}

	key := make([]byte, 0, len(PairKeyPrefix)+len(prefixedA)+len(prefixedB))
	key = append(key, PairKeyPrefix...)
	key = append(key, prefixedA...)
	return append(key, prefixedB...), nil
}
