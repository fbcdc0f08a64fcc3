// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "elias_federation"

var (
	dispatcherSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "submitted_total",
		Help:      "Count of requests accepted by the dispatcher.",
	}, []string{"node", "priority"})

	dispatcherDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "dispatched_total",
		Help:      "Count of requests released to consumers.",
	}, []string{"node", "priority"})

	dispatcherQueueWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "queue_wait_seconds",
		Help:      "Time a request spent pending before dispatch.",
		Buckets:   []float64{.001, .01, .1, .5, 1, 5, 15, 60, 300, 900},
	}, []string{"node", "priority"})

	dispatcherFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "finished_total",
		Help:      "Count of requests reaching a terminal status.",
	}, []string{"node", "status"})

	dispatcherQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "queue_depth",
		Help:      "Pending requests per priority tier.",
	}, []string{"node", "priority"})

	dispatcherSweptTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "swept_total",
		Help:      "Count of terminal requests removed by the retention sweep.",
	}, []string{"node"})
)

// Dispatcher tracks metrics for the request dispatcher.
type Dispatcher struct {
	node string
}

// NewDispatcher constructs a Dispatcher collector for the given node.
func NewDispatcher(node string) *Dispatcher {
	return &Dispatcher{node: nodeLabel(node)}
}

// ObserveSubmitted records an accepted request.
func (m Dispatcher) ObserveSubmitted(priority model.Priority) {
	dispatcherSubmittedTotal.WithLabelValues(m.node, string(priority)).Inc()
}

// ObserveDispatched records a request released to a consumer.
func (m Dispatcher) ObserveDispatched(priority model.Priority, submitted time.Time) {
	dispatcherDispatchedTotal.WithLabelValues(m.node, string(priority)).Inc()
	dispatcherQueueWait.WithLabelValues(m.node, string(priority)).Observe(time.Since(submitted).Seconds())
}

// ObserveFinished records a terminal transition.
func (m Dispatcher) ObserveFinished(status model.RequestStatus) {
	dispatcherFinishedTotal.WithLabelValues(m.node, string(status)).Inc()
}

// SetQueueDepth publishes the pending count of one tier.
func (m Dispatcher) SetQueueDepth(priority model.Priority, depth int) {
	dispatcherQueueDepth.WithLabelValues(m.node, string(priority)).Set(float64(depth))
}

// ObserveSwept records requests removed by retention.
func (m Dispatcher) ObserveSwept(n int) {
	dispatcherSweptTotal.WithLabelValues(m.node).Add(float64(n))
}

func nodeLabel(node string) string {
	if node == "" {
		return "unknown"
	}
	return node
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
