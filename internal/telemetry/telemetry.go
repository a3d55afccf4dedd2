/*
Package telemetry exposes the driver shell's optional Prometheus metrics.
The core engine packages never import this package or increment anything
themselves (I/O-free boundary) — cmd/snnctl calls the methods
here around its own calls into runtime.Runtime.
*/
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the counters/gauges a running snnctl instance reports.
// The zero value is unusable; construct with New.
type Metrics struct {
	registry *prometheus.Registry

	TicksTotal           prometheus.Counter
	EdgeVisitsTotal      prometheus.Counter
	SpikesScheduledTotal prometheus.Counter
	SpikesFiredTotal     prometheus.Counter
	CurrentTick          prometheus.Gauge
}

// New registers a fresh set of metrics on their own registry (never the
// global default registry, so multiple Runtimes in one process — e.g. in
// tests — never collide on metric registration).
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snn_ticks_total",
			Help: "Number of ticks the engine has advanced through.",
		}),
		EdgeVisitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snn_edge_visits_total",
			Help: "Number of hyperedges visited during delivery, across all ticks.",
		}),
		SpikesScheduledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snn_spikes_scheduled_total",
			Help: "Number of induced spikes scheduled onto the time wheel.",
		}),
		SpikesFiredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snn_spikes_fired_total",
			Help: "Number of spike events popped off the time wheel and delivered.",
		}),
		CurrentTick: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snn_current_tick",
			Help: "The time wheel's current tick counter.",
		}),
	}

	reg.MustRegister(
		m.TicksTotal,
		m.EdgeVisitsTotal,
		m.SpikesScheduledTotal,
		m.SpikesFiredTotal,
		m.CurrentTick,
	)
	return m
}

// Handler returns the http.Handler serving this Metrics' registry in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveStep records one step's outcome: the number of spikes the step
// returned (one per popped event), the edge-visit and scheduled-spike
// counts the caller read back from runtime.Runtime.LastStepStats, and the
// wheel's current tick. runtime.Runtime never calls into this package (it
// has no telemetry dependency).
func (m *Metrics) ObserveStep(firedCount int, edgeVisits int, spikesScheduled int, currentTick uint64) {
	m.TicksTotal.Inc()
	m.SpikesFiredTotal.Add(float64(firedCount))
	m.EdgeVisitsTotal.Add(float64(edgeVisits))
	m.SpikesScheduledTotal.Add(float64(spikesScheduled))
	m.CurrentTick.Set(float64(currentTick))
}
