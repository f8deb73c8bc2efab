// Package metrics implements the observability contract: three
// prometheus collectors registered once at daemon start and exposed
// over /metrics via promhttp.Handler(), the library the rest of the
// retrieved example pool reaches for.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics satisfies ingest.Metrics, wiring each call to a registered
// prometheus collector.
type Metrics struct {
	reorgsDetected     prometheus.Counter
	latestIndexedBlock prometheus.Gauge
	indexingLatency    prometheus.Gauge
}

// New registers the collectors against reg and returns a Metrics that
// reports through them.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reorgsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reorgs_detected_total",
			Help: "Number of chain reorganizations detected by the ingestion loop.",
		}),
		latestIndexedBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "latest_indexed_block_number",
			Help: "Block number of the most recently committed checkpoint.",
		}),
		indexingLatency: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "indexing_latency_seconds",
			Help: "Wall-clock gap between a block's timestamp and the moment its commit lands.",
		}),
	}

	reg.MustRegister(m.reorgsDetected, m.latestIndexedBlock, m.indexingLatency)
	return m
}

func (m *Metrics) IncReorgsDetected() { m.reorgsDetected.Inc() }

func (m *Metrics) SetLatestIndexedBlock(n int64) { m.latestIndexedBlock.Set(float64(n)) }

func (m *Metrics) ObserveIndexingLatency(seconds float64) { m.indexingLatency.Set(seconds) }
