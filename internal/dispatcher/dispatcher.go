// Package dispatcher holds typed work requests in priority tiers and releases
// them to consumers only as fast as consumer demand allows.
package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

var ErrStopped = errors.New("dispatcher stopped")

type SubmitOptions struct {
	// Priority overrides the tier derived from the request type when valid.
	Priority     model.Priority
	ClientNode   string
	Requirements map[string]string
}

type Config struct {
	NodeID        string
	SweepInterval time.Duration
	Retention     time.Duration
}

// Dispatcher is an actor: Run owns all queue and request state and applies
// commands one at a time, so a dispatch pass never interleaves with another
// mutation.
type Dispatcher struct {
	logger  *zap.Logger
	metrics Metrics
	audit   AuditRecorder
	now     func() time.Time
	newID   func() string

	nodeID        string
	sweepInterval time.Duration
	retention     time.Duration

	commands chan func()
	out      chan model.Request
	stopped  chan struct{}
	running  atomic.Bool

	// owned by Run
	queues         map[model.Priority][]*model.Request
	requests       map[string]*model.Request
	outbox         []model.Request
	demand         int
	totalProcessed int
}

func New(cfg Config, metrics Metrics, audit AuditRecorder, logger *zap.Logger) (*Dispatcher, error) {
	if metrics == nil {
		return nil, errors.New("dispatcher metrics is required")
	}
	d := &Dispatcher{
		logger:        logger.Named("dispatcher").With(zap.String("node", cfg.NodeID)),
		metrics:       metrics,
		audit:         audit,
		now:           time.Now,
		newID:         uuid.NewString,
		nodeID:        cfg.NodeID,
		sweepInterval: cfg.SweepInterval,
		retention:     cfg.Retention,
		commands:      make(chan func()),
		out:           make(chan model.Request),
		stopped:       make(chan struct{}),
		queues:        make(map[model.Priority][]*model.Request, len(model.Priorities)),
		requests:      make(map[string]*model.Request),
	}
	if d.sweepInterval <= 0 {
		d.sweepInterval = defaultSweepInterval
	}
	if d.retention <= 0 {
		d.retention = defaultRetention
	}
	return d, nil
}

// Run processes commands, hands dispatched requests to Dispatched() in dispatch
// order and sweeps finished requests until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return errors.New("dispatcher already running")
	}
	defer close(d.stopped)

	ticker := time.NewTicker(d.sweepInterval)
	defer ticker.Stop()

	d.logger.Info("dispatcher started", zap.Duration("sweep_interval", d.sweepInterval), zap.Duration("retention", d.retention))
	for {
		var (
			out  chan<- model.Request
			next model.Request
		)
		if len(d.outbox) > 0 {
			out, next = d.out, d.outbox[0]
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-d.commands:
			cmd()
		case out <- next:
			d.outbox[0] = model.Request{}
			d.outbox = d.outbox[1:]
		case <-ticker.C:
			d.sweep()
		}
	}
}

// Dispatched delivers requests that moved to processing.
func (d *Dispatcher) Dispatched() <-chan model.Request {
	return d.out
}

// exec runs fn inside the Run goroutine and waits for it.
func (d *Dispatcher) exec(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	cmd := func() {
		fn()
		close(done)
	}
	select {
	case d.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
	<-done
	return nil
}

// Submit enqueues a request and runs a dispatch pass. A missing or unknown
// priority is derived from the request type.
func (d *Dispatcher) Submit(ctx context.Context, requestType string, payload json.RawMessage, opts SubmitOptions) (string, error) {
	priority := opts.Priority
	if !priority.Valid() {
		priority = PriorityFor(requestType)
	}
	req := &model.Request{
		ID:           d.newID(),
		Type:         requestType,
		Payload:      payload,
		Priority:     priority,
		ClientNode:   opts.ClientNode,
		Requirements: opts.Requirements,
		Status:       model.RequestPending,
	}
	*req = req.Clone()

	err := d.exec(ctx, func() {
		req.SubmittedAt = d.now()
		d.requests[req.ID] = req
		d.queues[priority] = append(d.queues[priority], req)
		d.metrics.ObserveSubmitted(priority)
		d.dispatch()
	})
	if err != nil {
		return "", err
	}

	d.logger.Debug("request submitted", zap.String("id", req.ID), zap.String("type", requestType), zap.String("priority", string(priority)))
	d.record(EventRequestSubmitted, map[string]any{
		"request_id": req.ID,
		"type":       requestType,
		"priority":   string(priority),
	}, opts.ClientNode)
	return req.ID, nil
}

// SignalDemand adds n consumer slots and runs a dispatch pass. n <= 0 is ignored.
func (d *Dispatcher) SignalDemand(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	return d.exec(ctx, func() {
		d.demand += n
		d.dispatch()
	})
}

// dispatch drains tiers in priority order while demand remains.
func (d *Dispatcher) dispatch() {
	for d.demand > 0 {
		req := d.pop()
		if req == nil {
			break
		}
		now := d.now()
		req.Status = model.RequestProcessing
		req.DispatchedAt = &now
		d.demand--
		d.outbox = append(d.outbox, req.Clone())
		d.metrics.ObserveDispatched(req.Priority, req.SubmittedAt)
	}
	for _, p := range model.Priorities {
		d.metrics.SetQueueDepth(p, len(d.queues[p]))
	}
}

func (d *Dispatcher) pop() *model.Request {
	for _, p := range model.Priorities {
		q := d.queues[p]
		if len(q) == 0 {
			continue
		}
		req := q[0]
		q[0] = nil
		d.queues[p] = q[1:]
		return req
	}
	return nil
}

func (d *Dispatcher) MarkCompleted(ctx context.Context, id string, result json.RawMessage) error {
	return d.finish(ctx, id, model.RequestCompleted, func(r *model.Request) {
		r.Result = append(json.RawMessage(nil), result...)
	})
}

func (d *Dispatcher) MarkFailed(ctx context.Context, id string, reason string) error {
	return d.finish(ctx, id, model.RequestFailed, func(r *model.Request) {
		r.Error = reason
	})
}

func (d *Dispatcher) finish(ctx context.Context, id string, status model.RequestStatus, apply func(*model.Request)) error {
	var (
		finished model.Request
		errFin   error
	)
	err := d.exec(ctx, func() {
		req, ok := d.requests[id]
		if !ok {
			errFin = fmt.Errorf("request %s: %w", id, model.ErrNotFound)
			return
		}
		if req.Status != model.RequestProcessing {
			errFin = fmt.Errorf("request %s is %s: %w", id, req.Status, model.ErrInvalidTransition)
			return
		}
		now := d.now()
		apply(req)
		req.Status = status
		req.CompletedAt = &now
		d.totalProcessed++
		d.metrics.ObserveFinished(status)
		finished = req.Clone()
	})
	if err != nil {
		return err
	}
	if errFin != nil {
		return errFin
	}

	event := EventRequestCompleted
	data := map[string]any{"request_id": finished.ID, "type": finished.Type}
	if status == model.RequestFailed {
		event = EventRequestFailed
		data["error"] = finished.Error
	}
	d.record(event, data, "")
	return nil
}

// Status returns a snapshot of one request.
func (d *Dispatcher) Status(ctx context.Context, id string) (model.Request, error) {
	var (
		out   model.Request
		found bool
	)
	if err := d.exec(ctx, func() {
		if req, ok := d.requests[id]; ok {
			out, found = req.Clone(), true
		}
	}); err != nil {
		return model.Request{}, err
	}
	if !found {
		return model.Request{}, fmt.Errorf("request %s: %w", id, model.ErrNotFound)
	}
	return out, nil
}

func (d *Dispatcher) QueueStatus(ctx context.Context) (model.QueueStatus, error) {
	var out model.QueueStatus
	err := d.exec(ctx, func() {
		out = model.QueueStatus{
			Pending:        make(map[model.Priority]int, len(model.Priorities)),
			Demand:         d.demand,
			TotalProcessed: d.totalProcessed,
		}
		for _, p := range model.Priorities {
			out.Pending[p] = len(d.queues[p])
			out.TotalPending += len(d.queues[p])
		}
		for _, req := range d.requests {
			switch req.Status {
			case model.RequestProcessing:
				out.Processing++
			case model.RequestCompleted:
				out.Completed++
			case model.RequestFailed:
				out.Failed++
			}
		}
	})
	return out, err
}

// Sweep removes finished requests older than the retention window and reports
// how many were dropped.
func (d *Dispatcher) Sweep(ctx context.Context) (int, error) {
	var n int
	err := d.exec(ctx, func() { n = d.sweep() })
	return n, err
}

func (d *Dispatcher) sweep() int {
	cutoff := d.now().Add(-d.retention)
	removed := 0
	for id, req := range d.requests {
		if req.Status.Terminal() && req.CompletedAt != nil && req.CompletedAt.Before(cutoff) {
			delete(d.requests, id)
			removed++
		}
	}
	if removed > 0 {
		d.metrics.ObserveSwept(removed)
		d.logger.Info("swept finished requests", zap.Int("removed", removed))
	}
	return removed
}

func (d *Dispatcher) record(event string, data map[string]any, origin string) {
	if d.audit == nil {
		return
	}
	if _, err := d.audit.RecordEvent(event, data, origin); err != nil {
		d.logger.Warn("audit event not recorded", zap.String("event", event), zap.Error(err))
	}
}
