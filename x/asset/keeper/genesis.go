package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/vault-network/x/asset/types"
)

// InitGenesis initializes the asset module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	for i, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			return fmt.Errorf("failed to set pair %d: %w", i, err)
		}
	}

	k.logger.Info("asset module genesis initialized", "pairs", len(genState.Pairs))
	return nil
}

// ExportGenesis returns the asset module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	var startAfter *[2]types.AssetInfo
	for {
		page, err := k.GetPairs(ctx, startAfter, MaxPairsLimit)
		if err != nil {
			return nil, err
		}
		genesis.Pairs = append(genesis.Pairs, page...)
		if uint32(len(page)) < MaxPairsLimit {
			return genesis, nil
		}
		last := page[len(page)-1].AssetInfos
		startAfter = &last
	}
}
