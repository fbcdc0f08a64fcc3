package transport

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/workerpool"
)

const (
	defaultAnnounceTimeout = 5 * time.Second
	announceWorkerCount    = 8
)

type Peer struct {
	NodeID  string
	Address string
}

// PeerClient talks to other nodes over gRPC. Connections are opened lazily per
// peer and reused.
type PeerClient struct {
	logger          *zap.Logger
	metrics         PeerMetrics
	nodeID          string
	announceTimeout time.Duration
	dialOptions     []grpc.DialOption

	mu    sync.Mutex
	peers map[string]string
	conns map[string]*grpc.ClientConn
}

func NewPeerClient(nodeID string, peers []Peer, metrics PeerMetrics, logger *zap.Logger, opts ...grpc.DialOption) *PeerClient {
	c := &PeerClient{
		logger:          logger.Named("peerClient").With(zap.String("node", nodeID)),
		metrics:         metrics,
		nodeID:          nodeID,
		announceTimeout: defaultAnnounceTimeout,
		dialOptions: append([]grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
		}, opts...),
		peers: make(map[string]string, len(peers)),
		conns: make(map[string]*grpc.ClientConn),
	}
	for _, p := range peers {
		c.peers[p.NodeID] = p.Address
	}
	return c
}

// Peers returns the known peer ids in a stable order.
func (c *PeerClient) Peers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.peers))
	for id := range c.peers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *PeerClient) conn(nodeID string) (*grpc.ClientConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conn, ok := c.conns[nodeID]; ok {
		return conn, nil
	}
	addr, ok := c.peers[nodeID]
	if !ok {
		return nil, fmt.Errorf("unknown peer %s: %w", nodeID, model.ErrConnectionFailed)
	}
	conn, err := grpc.NewClient(addr, c.dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial %s at %s: %w: %w", nodeID, addr, model.ErrConnectionFailed, err)
	}
	c.conns[nodeID] = conn
	return conn, nil
}

// PushRuleUpdate sends pkg to nodeID and returns its acknowledgment.
func (c *PeerClient) PushRuleUpdate(ctx context.Context, nodeID string, pkg model.UpdatePackage) (resp model.RuleUpdateResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("push_rule_update", nodeID, err, started)
	}()

	conn, err := c.conn(nodeID)
	if err != nil {
		return model.RuleUpdateResponse{}, err
	}
	if err = conn.Invoke(ctx, pushRuleUpdateMethod, &RuleUpdate{Package: pkg}, &resp); err != nil {
		return model.RuleUpdateResponse{}, mapError(nodeID, err)
	}
	return resp, nil
}

func (c *PeerClient) AnnounceBlock(ctx context.Context, nodeID string, block model.Block) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("announce_block", nodeID, err, started)
	}()

	conn, err := c.conn(nodeID)
	if err != nil {
		return err
	}
	if err = conn.Invoke(ctx, announceBlockMethod, &NewBlock{Block: block, FromNode: c.nodeID}, &Empty{}); err != nil {
		return mapError(nodeID, err)
	}
	return nil
}

// BroadcastBlock announces block to every peer concurrently. Failures are
// logged and never returned.
func (c *PeerClient) BroadcastBlock(ctx context.Context, block model.Block) {
	peers := c.Peers()
	workerpool.Collect(ctx, announceWorkerCount, peers, func(ctx context.Context, nodeID string) error {
		ctx, cancel := context.WithTimeout(ctx, c.announceTimeout)
		defer cancel()
		err := c.AnnounceBlock(ctx, nodeID, block)
		if err != nil {
			c.logger.Warn("block announcement failed", zap.String("peer", nodeID), zap.Uint64("height", block.Height), zap.Error(err))
		}
		return err
	})
}

func (c *PeerClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	for id, conn := range c.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", id, err))
		}
		delete(c.conns, id)
	}
	return errors.Join(errs...)
}

func mapError(nodeID string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable:
		return fmt.Errorf("peer %s: %w: %s", nodeID, model.ErrConnectionFailed, status.Convert(err).Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("peer %s: %w", nodeID, model.ErrTimeout)
	default:
		return fmt.Errorf("peer %s: %w", nodeID, err)
	}
}
