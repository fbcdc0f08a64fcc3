// Package transport exposes the node over gRPC and HTTP: the peer service used
// between nodes, the health service and the admin JSON API.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

// HealthHandler implements ExplorerServiceServer's health probe for a node.
type HealthHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	nodeID string
	ledger Ledger
}

func NewHealthHandler(nodeID string, ledger Ledger) blockinsight7000v1.ExplorerServiceServer {
	return &HealthHandler{nodeID: nodeID, ledger: ledger}
}

// Health reports the node as serving and summarises its chain head.
func (h *HealthHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	s := h.ledger.Status()
	description := fmt.Sprintf("node %s: height %d, pending %d, mining %t", h.nodeID, s.HeadHeight, s.Pending, s.MiningEnabled)
	if s.LastMiningErr != "" {
		description += ", last mining error: " + s.LastMiningErr
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: description,
	}, nil
}
