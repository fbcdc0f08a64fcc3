package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerMiningTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "mining_cycles_total",
		Help:      "Count of mining cycles by status.",
	}, []string{"node", "status"})

	ledgerMiningDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "mining_duration_seconds",
		Help:      "Duration of a proof-of-work search.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "status"})

	ledgerMiningAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "mining_attempts",
		Help:      "Nonces tried per mining cycle.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 8), // 16..262144
	}, []string{"node", "status"})

	ledgerBlocksReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "blocks_received_total",
		Help:      "Count of peer blocks by validation result.",
	}, []string{"node", "result"})

	ledgerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "events_recorded_total",
		Help:      "Count of transactions added to the pending pool.",
	}, []string{"node"})

	ledgerPendingDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "pending_dropped_total",
		Help:      "Count of pending transactions evicted from a full pool.",
	}, []string{"node"})

	ledgerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "head_height",
		Help:      "Height of the local chain head.",
	}, []string{"node"})

	ledgerPending = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "pending_transactions",
		Help:      "Transactions waiting to be mined.",
	}, []string{"node"})
)

// Ledger tracks metrics for the proof-of-work ledger.
type Ledger struct {
	node string
}

// NewLedger constructs a Ledger collector for the given node.
func NewLedger(node string) *Ledger {
	return &Ledger{node: nodeLabel(node)}
}

// ObserveMining records a mining cycle outcome, attempt count and duration.
func (m Ledger) ObserveMining(err error, attempts uint64, started time.Time) {
	status := statusLabel(err)
	ledgerMiningTotal.WithLabelValues(m.node, status).Inc()
	ledgerMiningDuration.WithLabelValues(m.node, status).Observe(time.Since(started).Seconds())
	ledgerMiningAttempts.WithLabelValues(m.node, status).Observe(float64(attempts))
}

// ObserveBlockReceived records a peer block; result is "accepted" or a rejection reason.
func (m Ledger) ObserveBlockReceived(result string) {
	ledgerBlocksReceivedTotal.WithLabelValues(m.node, result).Inc()
}

// ObserveEventRecorded records a transaction added to the pending pool.
func (m Ledger) ObserveEventRecorded() {
	ledgerEventsTotal.WithLabelValues(m.node).Inc()
}

// ObservePendingDropped records transactions evicted from a full pending pool.
func (m Ledger) ObservePendingDropped(n int) {
	ledgerPendingDroppedTotal.WithLabelValues(m.node).Add(float64(n))
}

// SetChain publishes the head height and pending pool size.
func (m Ledger) SetChain(height uint64, pending int) {
	ledgerHeight.WithLabelValues(m.node).Set(float64(height))
	ledgerPending.WithLabelValues(m.node).Set(float64(pending))
}
