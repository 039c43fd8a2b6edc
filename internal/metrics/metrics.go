package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the global metrics sink. CounterVec is safe for concurrent use.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Operations)
}

type Metrics struct {
	prometheus Prometheus
}

// Increment counts one ledger operation for the given model / phase / status.
func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Operations.WithLabelValues(labels...).Inc()
}
