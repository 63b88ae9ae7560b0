package types

import (
	"fmt"
)

// GenesisState defines the asset module's genesis state.
type GenesisState struct {
	Pairs []PairInfo `json:"pairs"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Pairs: []PairInfo{},
	}
}

// Validate performs basic genesis state validation. Pairs are compared
// regardless of asset order.
func (gs GenesisState) Validate() error {
	for i, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %d: %w", i, err)
		}
		for j := 0; j < i; j++ {
			if samePairAssets(gs.Pairs[j].AssetInfos, pair.AssetInfos) {
				return fmt.Errorf("duplicate pair %d and %d: %w", j, i, ErrPairAlreadyExists)
			}
		}
	}
	return nil
}

func samePairAssets(a, b [2]AssetInfo) bool {
	return (a[0].Equal(b[0]) && a[1].Equal(b[1])) || (a[0].Equal(b[1]) && a[1].Equal(b[0]))
}
