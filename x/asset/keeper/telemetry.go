package keeper

import (
	"context"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of the spans started by the keeper.
const TracerName = "github.com/paw-chain/vault-network/x/asset"

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func emitTransferTelemetry(msgType, denom string, err error) {
	telemetry.IncrCounterWithLabels(
		[]string{"asset", "dispatch"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("type", msgType),
			telemetry.NewLabel("asset", denom),
			telemetry.NewLabel("status", statusLabel(err)),
		},
	)
}
