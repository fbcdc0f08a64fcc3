package metrics

import (
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	distributorChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "distributor",
		Name:      "checks_total",
		Help:      "Count of watched file sweeps.",
	}, []string{"node", "status"})

	distributorCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "distributor",
		Name:      "check_duration_seconds",
		Help:      "Duration of a watched file sweep including fan-out.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "status"})

	distributorDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "distributor",
		Name:      "deliveries_total",
		Help:      "Count of rule packages sent to clients by outcome.",
	}, []string{"node", "outcome"})

	distributorDeliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "distributor",
		Name:      "delivery_duration_seconds",
		Help:      "Time from send to acknowledgment or timeout.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"node", "outcome"})

	distributorFileErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "distributor",
		Name:      "file_errors_total",
		Help:      "Count of watched files that could not be read.",
	}, []string{"node"})
)

// Distributor tracks metrics for the rule distributor.
type Distributor struct {
	node string
}

// NewDistributor constructs a Distributor collector for the given node.
func NewDistributor(node string) *Distributor {
	return &Distributor{node: nodeLabel(node)}
}

// ObserveCheck records a sweep over the watched files.
func (m Distributor) ObserveCheck(err error, started time.Time) {
	status := statusLabel(err)
	distributorChecksTotal.WithLabelValues(m.node, status).Inc()
	distributorCheckDuration.WithLabelValues(m.node, status).Observe(time.Since(started).Seconds())
}

// ObserveDelivery records the outcome of one client send.
func (m Distributor) ObserveDelivery(outcome model.DeliveryOutcome, started time.Time) {
	distributorDeliveriesTotal.WithLabelValues(m.node, string(outcome)).Inc()
	distributorDeliveryDuration.WithLabelValues(m.node, string(outcome)).Observe(time.Since(started).Seconds())
}

// ObserveFileUnreadable records a watched file read failure.
func (m Distributor) ObserveFileUnreadable() {
	distributorFileErrorsTotal.WithLabelValues(m.node).Inc()
}
