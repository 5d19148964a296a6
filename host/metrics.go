package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what the local runtime does, for the serve mode's
// /metrics endpoint.
type Metrics struct {
	Invocations *prometheus.CounterVec
	Rejections  *prometheus.CounterVec
	Events      prometheus.Counter
	Sequence    prometheus.Gauge
}

// NewMetrics registers the runtime collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stonegate",
			Name:      "invocations_total",
			Help:      "Contract invocations by method and outcome.",
		}, []string{"method", "outcome"}),
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stonegate",
			Name:      "rejections_total",
			Help:      "Guard rejections by error symbol.",
		}, []string{"symbol"}),
		Events: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stonegate",
			Name:      "events_total",
			Help:      "Events published by the contract.",
		}),
		Sequence: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "stonegate",
			Name:      "ledger_sequence",
			Help:      "Current local ledger sequence.",
		}),
	}
}
