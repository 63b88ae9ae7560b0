package keeper

import (
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/paw-chain/vault-network/x/asset/types"
)

// Keeper resolves asset balances against the bank and wasm keepers, dispatches
// transfer messages and stores registered pairs in their canonical form.
type Keeper struct {
	storeService store.KVStoreService
	bankKeeper   types.BankKeeper
	wasmKeeper   types.WasmKeeper
	addressCodec types.AddressCodec
	logger       log.Logger
	metrics      *AssetMetrics
}

// NewKeeper creates a new asset Keeper instance
func NewKeeper(
	storeService store.KVStoreService,
	bankKeeper types.BankKeeper,
	wasmKeeper types.WasmKeeper,
	addressCodec types.AddressCodec,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		storeService: storeService,
		bankKeeper:   bankKeeper,
		wasmKeeper:   wasmKeeper,
		addressCodec: addressCodec,
		logger:       logger.With("module", fmt.Sprintf("x/%s", types.ModuleName)),
		metrics:      NewAssetMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger() log.Logger {
	return k.logger
}

// AddressCodec returns the codec used to canonicalize addresses.
func (k Keeper) AddressCodec() types.AddressCodec {
	return k.addressCodec
}
