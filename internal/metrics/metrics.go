// Package metrics exposes the governor's operational state as Prometheus
// gauges and counters, grounded on the ecosystem's client_golang usage
// seen across the retrieval pack (pgscv, node_exporter, ollama-proxy).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the metrics the governor updates every tick.
type Registry struct {
	TempCelsius       prometheus.Gauge
	FanRPM            prometheus.Gauge
	CurrentCapKHz     *prometheus.GaugeVec
	CapTransitions    *prometheus.CounterVec
	TunerAdjustments  *prometheus.CounterVec
	registry          *prometheus.Registry
}

// New creates a fresh Registry with all series registered.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		TempCelsius: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wfthermald_temp_celsius",
			Help: "Most recently observed package temperature.",
		}),
		FanRPM: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wfthermald_fan_rpm",
			Help: "Most recently observed fan speed, max of both channels.",
		}),
		CurrentCapKHz: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wfthermald_current_cap_khz",
			Help: "Currently commanded CPU frequency cap, by profile.",
		}, []string{"profile"}),
		CapTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wfthermald_cap_transitions_total",
			Help: "Count of cap changes, by direction.",
		}, []string{"direction"}),
		TunerAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wfthermald_tuner_adjustments_total",
			Help: "Count of auto-tuner windows that changed a table, by profile.",
		}, []string{"profile"}),
	}

	reg.MustRegister(r.TempCelsius, r.FanRPM, r.CurrentCapKHz, r.CapTransitions, r.TunerAdjustments)
	return r
}

// Handler returns the HTTP handler that serves this registry's series.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
