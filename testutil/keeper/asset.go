package keeper

import (
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/vault-network/x/asset/keeper"
	"github.com/paw-chain/vault-network/x/asset/types"
)

// AssetFixture bundles an asset keeper with the collaborators it was built on.
type AssetFixture struct {
	Keeper     *keeper.Keeper
	BankKeeper bankkeeper.BaseKeeper
	WasmKeeper *MockWasmKeeper
	Codec      types.Bech32AddressCodec
	Ctx        sdk.Context
}

// AssetKeeper creates a test keeper for the asset module backed by a real bank
// keeper and a mock wasm keeper.
func AssetKeeper(t testing.TB) AssetFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)
	prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()

	maccPerms := map[string][]string{
		types.ModuleName: {authtypes.Minter},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(prefix),
		prefix,
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	wasmKeeper := NewMockWasmKeeper()
	addressCodec := types.NewBech32AddressCodec(prefix)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		bankKeeper,
		wasmKeeper,
		addressCodec,
		log.NewNopLogger(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return AssetFixture{
		Keeper:     k,
		BankKeeper: bankKeeper,
		WasmKeeper: wasmKeeper,
		Codec:      addressCodec,
		Ctx:        ctx,
	}
}

// FundAccount mints coins and sends them to addr.
func (f AssetFixture) FundAccount(t testing.TB, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, types.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, types.ModuleName, addr, coins))
}

// TestAddr returns a deterministic account address derived from seed.
func TestAddr(seed string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, seed)
	return sdk.AccAddress(bz)
}

// NativeCoins is a shorthand for a single coin set.
func NativeCoins(denom string, amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewInt(amount)))
}
