package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "operations_total",
		Help:      "Count of outbound peer RPC operations.",
	}, []string{"operation", "peer", "status"})
	peerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "peer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of outbound peer RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "peer", "status"})
)

// PeerClient tracks metrics for RPC calls to federation peers.
type PeerClient struct{}

// NewPeerClient constructs a metrics collector for peer calls.
func NewPeerClient() *PeerClient {
	return &PeerClient{}
}

// Observe records a single peer call outcome and duration.
func (m PeerClient) Observe(operation, peer string, err error, started time.Time) {
	status := statusLabel(err)
	peer = nodeLabel(peer)

	peerRequestsTotal.WithLabelValues(operation, peer, status).Inc()
	peerRequestDuration.WithLabelValues(operation, peer, status).Observe(time.Since(started).Seconds())
}
