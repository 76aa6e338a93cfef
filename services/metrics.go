package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts store operations by outcome and tracks collection sizes.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Operations      *prometheus.CounterVec
	CollectionSize  *prometheus.GaugeVec
	ConstructFaults prometheus.Counter
}

// NewMetrics registers the collectors on reg; a nil reg creates unregistered
// collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_store_operations_total",
			Help: "Store operations by name and outcome",
		}, []string{"operation", "outcome"}),

		CollectionSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "reservation_store_collection_records",
			Help: "Number of records in a collection after its last save",
		}, []string{"collection"}),

		ConstructFaults: factory.NewCounter(prometheus.CounterOpts{
			Name: "reservation_store_record_faults_total",
			Help: "Stored records that could not be constructed",
		}),
	}
}

func (m *Metrics) observe(operation string, ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) setSize(collection string, n int) {
	if m == nil {
		return
	}
	m.CollectionSize.WithLabelValues(collection).Set(float64(n))
}

func (m *Metrics) fault() {
	if m == nil {
		return
	}
	m.ConstructFaults.Inc()
}
