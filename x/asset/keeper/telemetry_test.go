package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	keepertest "github.com/paw-chain/vault-network/testutil/keeper"
	"github.com/paw-chain/vault-network/x/asset/keeper"
	"github.com/paw-chain/vault-network/x/asset/types"
)

func TestKeeperSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	f := keepertest.AssetKeeper(t)
	sender := keepertest.TestAddr("sender")
	recipient := keepertest.TestAddr("recipient")
	f.FundAccount(t, sender, keepertest.NativeCoins("uusd", 10))

	asset := types.NewAsset(types.NewNativeAssetInfo("uusd"), sdkmath.NewInt(10))
	require.NoError(t, f.Keeper.Transfer(f.Ctx, sender.String(), recipient.String(), asset))
	require.Error(t, f.Keeper.Dispatch(f.Ctx, sender.String(), types.CosmosMsg{}))
	_, err := f.Keeper.QueryPairPools(f.Ctx, [2]types.AssetInfo{
		types.NewNativeAssetInfo("uusd"),
		types.NewNativeAssetInfo("uluna"),
	})
	require.ErrorIs(t, err, types.ErrPairNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 3)

	require.Equal(t, "asset.Dispatch", spans[0].Name())
	require.Equal(t, keeper.TracerName, spans[0].InstrumentationScope().Name)
	require.Equal(t, codes.Ok, spans[0].Status().Code)

	require.Equal(t, "asset.Dispatch", spans[1].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)

	require.Equal(t, "asset.QueryPairPools", spans[2].Name())
	require.Equal(t, codes.Error, spans[2].Status().Code)
}
