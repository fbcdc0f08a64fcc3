// Package distributor keeps versioned rule files synchronized from this node to
// the peers that subscribed to their rule type.
package distributor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/elias-federation/internal/clock"
	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/digest"
	"github.com/goodnatureofminers/elias-federation/pkg/workerpool"
)

type Config struct {
	NodeID       string
	AckTimeout   time.Duration
	SyncInterval time.Duration
}

type Distributor struct {
	logger    *zap.Logger
	metrics   Metrics
	transport Transport
	audit     AuditRecorder
	now       func() time.Time
	readFile  func(string) ([]byte, error)

	nodeID       string
	ackTimeout   time.Duration
	syncInterval time.Duration

	// syncMu serializes whole checks so a file is never diffed twice concurrently.
	syncMu sync.Mutex

	mu               sync.RWMutex
	files            []*model.WatchedFile
	versions         map[string]int64
	clients          map[string]*model.ClientRegistration
	events           []model.DistributionEvent
	totalDistributed int
}

func New(
	cfg Config,
	files []model.WatchedFile,
	transport Transport,
	metrics Metrics,
	audit AuditRecorder,
	logger *zap.Logger,
) (*Distributor, error) {
	if transport == nil {
		return nil, errors.New("distributor transport is required")
	}
	if metrics == nil {
		return nil, errors.New("distributor metrics is required")
	}

	d := &Distributor{
		logger:       logger.Named("distributor").With(zap.String("node", cfg.NodeID)),
		metrics:      metrics,
		transport:    transport,
		audit:        audit,
		now:          time.Now,
		readFile:     os.ReadFile,
		nodeID:       cfg.NodeID,
		ackTimeout:   cfg.AckTimeout,
		syncInterval: cfg.SyncInterval,
		versions:     make(map[string]int64),
		clients:      make(map[string]*model.ClientRegistration),
	}
	if d.ackTimeout <= 0 {
		d.ackTimeout = defaultAckTimeout
	}
	if d.syncInterval <= 0 {
		d.syncInterval = defaultSyncInterval
	}

	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if f.Path == "" || f.RuleType == "" {
			return nil, fmt.Errorf("watched file %q needs a path and a rule type", f.Path)
		}
		if _, dup := seen[f.Path]; dup {
			return nil, fmt.Errorf("watched file %q listed twice", f.Path)
		}
		seen[f.Path] = struct{}{}
		d.files = append(d.files, &model.WatchedFile{Path: f.Path, RuleType: f.RuleType})
	}
	return d, nil
}

// Run checks watched files immediately and then once per sync interval.
func (d *Distributor) Run(ctx context.Context) error {
	d.logger.Info("rule distributor started", zap.Int("watched_files", len(d.files)), zap.Duration("interval", d.syncInterval))
	d.sync(ctx)
	return clock.Every(ctx, d.syncInterval, d.sync)
}

func (d *Distributor) sync(ctx context.Context) {
	if _, err := d.CheckAndDistribute(ctx); err != nil && ctx.Err() == nil {
		d.logger.Warn("rule check incomplete", zap.Error(err))
	}
}

// CheckAndDistribute reads every watched file and distributes those whose
// checksum changed since the last check. An unreadable file is reported in the
// returned error and does not stop the others.
func (d *Distributor) CheckAndDistribute(ctx context.Context) (events []model.DistributionEvent, err error) {
	d.syncMu.Lock()
	defer d.syncMu.Unlock()

	started := time.Now()
	defer func() {
		d.metrics.ObserveCheck(err, started)
	}()

	var errs []error
	for _, f := range d.WatchedFiles() {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		content, readErr := d.readFile(f.Path)
		if readErr != nil {
			d.metrics.ObserveFileUnreadable()
			d.logger.Warn("watched file unreadable", zap.String("path", f.Path), zap.Error(readErr))
			errs = append(errs, fmt.Errorf("%s: %w: %w", f.Path, model.ErrFileUnreadable, readErr))
			continue
		}
		checksum := digest.SHA256Hex(content)
		if checksum == f.LastChecksum {
			continue
		}
		events = append(events, d.distribute(ctx, d.buildPackage(f.RuleType, f.Path, string(content), checksum)))
	}

	return events, errors.Join(errs...)
}

// ForceSync runs a check outside the regular interval.
func (d *Distributor) ForceSync(ctx context.Context) ([]model.DistributionEvent, error) {
	return d.CheckAndDistribute(ctx)
}

// DistributeUpdate sends the given content for path to every subscriber of
// ruleType, bypassing the file system.
func (d *Distributor) DistributeUpdate(ctx context.Context, ruleType, path, content string) (model.DistributionEvent, error) {
	if ruleType == "" || path == "" {
		return model.DistributionEvent{}, errors.New("rule type and path are required")
	}
	d.syncMu.Lock()
	defer d.syncMu.Unlock()

	pkg := d.buildPackage(ruleType, path, content, digest.SHA256HexString(content))
	return d.distribute(ctx, pkg), nil
}

// buildPackage stamps a new version for path and remembers the checksum so the
// same content is not resent by the next check. Versions are seeded from the
// wall clock so they keep growing across restarts of this node.
func (d *Distributor) buildPackage(ruleType, path, content, checksum string) model.UpdatePackage {
	d.mu.Lock()
	now := d.now()
	version := now.UnixNano()
	if prev := d.versions[path]; version <= prev {
		version = prev + 1
	}
	d.versions[path] = version
	for _, f := range d.files {
		if f.Path == path {
			f.LastChecksum = checksum
			f.Version = version
		}
	}
	d.mu.Unlock()

	return model.UpdatePackage{
		RuleType:   ruleType,
		FilePath:   path,
		Content:    content,
		Checksum:   checksum,
		Version:    version,
		UpdatedAt:  now,
		SourceNode: d.nodeID,
	}
}

func (d *Distributor) distribute(ctx context.Context, pkg model.UpdatePackage) model.DistributionEvent {
	targets := d.subscribers(pkg.RuleType)
	// One worker per target: a stalled peer must not hold back the others.
	results := workerpool.Collect(ctx, 0, targets, func(ctx context.Context, node string) model.DeliveryResult {
		return d.SendToClient(ctx, node, pkg)
	})

	event := model.DistributionEvent{
		Timestamp:       d.now(),
		RuleType:        pkg.RuleType,
		FilePath:        pkg.FilePath,
		TargetClients:   targets,
		PerClientResult: make(map[string]model.DeliveryResult, len(targets)),
		Checksum:        pkg.Checksum,
		Version:         pkg.Version,
	}
	delivered := 0
	for i, node := range targets {
		event.PerClientResult[node] = results[i]
		if results[i].Outcome == model.DeliveryOK {
			delivered++
		}
	}

	d.mu.Lock()
	d.events = append(d.events, event.Clone())
	if len(d.events) > maxEventHistory {
		d.events = slices.Clone(d.events[len(d.events)-maxEventHistory:])
	}
	d.totalDistributed++
	d.mu.Unlock()

	d.logger.Info("rules distributed",
		zap.String("rule_type", pkg.RuleType),
		zap.String("path", pkg.FilePath),
		zap.Int64("version", pkg.Version),
		zap.Int("targets", len(targets)),
		zap.Int("delivered", delivered),
	)
	if d.audit != nil {
		if _, err := d.audit.RecordEvent(EventRulesDistributed, map[string]any{
			"rule_type": pkg.RuleType,
			"file_path": pkg.FilePath,
			"checksum":  pkg.Checksum,
			"version":   pkg.Version,
			"targets":   len(targets),
			"delivered": delivered,
		}, ""); err != nil {
			d.logger.Warn("audit event not recorded", zap.Error(err))
		}
	}
	return event
}

type ack struct {
	resp model.RuleUpdateResponse
	err  error
}

// SendToClient pushes pkg to one peer and waits at most the ack timeout for
// its answer. Any answer, accepted or not, refreshes the peer's LastSeen.
func (d *Distributor) SendToClient(ctx context.Context, nodeID string, pkg model.UpdatePackage) model.DeliveryResult {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, d.ackTimeout)
	defer cancel()

	acks := make(chan ack, 1)
	go func() {
		resp, err := d.transport.PushRuleUpdate(ctx, nodeID, pkg)
		acks <- ack{resp: resp, err: err}
	}()

	var result model.DeliveryResult
	select {
	case <-ctx.Done():
		result = failure(ctx.Err())
	case a := <-acks:
		switch {
		case a.err != nil:
			result = failure(a.err)
		case !a.resp.Accepted:
			d.touch(nodeID)
			result = model.DeliveryResult{Outcome: model.DeliveryError, Error: "rejected: " + a.resp.Reason}
		default:
			d.touch(nodeID)
			result = model.DeliveryResult{Outcome: model.DeliveryOK}
		}
	}

	d.metrics.ObserveDelivery(result.Outcome, started)
	if result.Outcome != model.DeliveryOK {
		d.logger.Warn("rule delivery failed",
			zap.String("peer", nodeID),
			zap.String("outcome", string(result.Outcome)),
			zap.String("error", result.Error),
		)
	}
	return result
}

func failure(err error) model.DeliveryResult {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, model.ErrTimeout) {
		return model.DeliveryResult{Outcome: model.DeliveryTimeout, Error: model.ErrTimeout.Error()}
	}
	return model.DeliveryResult{Outcome: model.DeliveryError, Error: err.Error()}
}

func (d *Distributor) touch(nodeID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.clients[nodeID]; ok {
		c.LastSeen = d.now()
	}
}

func (d *Distributor) subscribers(ruleType string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var nodes []string
	for id, c := range d.clients {
		if c.Subscribes(ruleType) {
			nodes = append(nodes, id)
		}
	}
	slices.Sort(nodes)
	return nodes
}

// RegisterClient upserts a registration. Re-registering replaces the rule types
// and keeps the original registration time.
func (d *Distributor) RegisterClient(nodeID string, ruleTypes []string) (model.ClientRegistration, error) {
	if nodeID == "" {
		return model.ClientRegistration{}, errors.New("node id is required")
	}
	types := slices.Clone(ruleTypes)
	slices.Sort(types)
	types = slices.Compact(types)

	now := d.now()
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.clients[nodeID]
	if !ok {
		c = &model.ClientRegistration{NodeID: nodeID, RegisteredAt: now}
		d.clients[nodeID] = c
	}
	c.RuleTypes = types
	c.LastSeen = now
	return c.Clone(), nil
}

func (d *Distributor) Clients() []model.ClientRegistration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.ClientRegistration, 0, len(d.clients))
	for _, c := range d.clients {
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, func(a, b model.ClientRegistration) int {
		return strings.Compare(a.NodeID, b.NodeID)
	})
	return out
}

func (d *Distributor) WatchedFiles() []model.WatchedFile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.WatchedFile, len(d.files))
	for i, f := range d.files {
		out[i] = *f
	}
	return out
}

// Events returns the most recent distribution events, oldest first.
func (d *Distributor) Events() []model.DistributionEvent {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.DistributionEvent, len(d.events))
	for i, e := range d.events {
		out[i] = e.Clone()
	}
	return out
}

func (d *Distributor) Status() model.DistributionStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	status := model.DistributionStatus{
		WatchedFiles:      len(d.files),
		RegisteredClients: len(d.clients),
		TotalDistributed:  d.totalDistributed,
	}
	if n := len(d.events); n > 0 {
		last := d.events[n-1].Clone()
		status.LastDistribution = &last
	}
	return status
}
