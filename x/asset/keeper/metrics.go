package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AssetMetrics holds all Prometheus metrics for the asset module
type AssetMetrics struct {
	QueriesTotal       *prometheus.CounterVec
	MessagesDispatched *prometheus.CounterVec
	PairsRegistered    prometheus.Counter
}

var (
	assetMetricsOnce sync.Once
	assetMetrics     *AssetMetrics
)

// NewAssetMetrics creates and registers asset metrics (singleton pattern)
func NewAssetMetrics() *AssetMetrics {
	assetMetricsOnce.Do(func() {
		assetMetrics = &AssetMetrics{
			QueriesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "vault",
					Subsystem: "asset",
					Name:      "queries_total",
					Help:      "Total number of balance and metadata queries",
				},
				[]string{"kind", "status"},
			),
			MessagesDispatched: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "vault",
					Subsystem: "asset",
					Name:      "messages_dispatched_total",
					Help:      "Total number of transfer messages dispatched",
				},
				[]string{"type", "status"},
			),
			PairsRegistered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "vault",
					Subsystem: "asset",
					Name:      "pairs_registered_total",
					Help:      "Total number of pairs registered",
				},
			),
		}
	})
	return assetMetrics
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
