package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

const EventRequestProcessed = "request_processed"

// ConsumerPool runs workers that each signal one unit of demand, handle the
// request they receive and report its outcome back to the queue.
type ConsumerPool struct {
	logger  *zap.Logger
	queue   Queue
	handler Handler
	workers int
}

func NewConsumerPool(queue Queue, handler Handler, workers int, logger *zap.Logger) *ConsumerPool {
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &ConsumerPool{
		logger:  logger.Named("consumer"),
		queue:   queue,
		handler: handler,
		workers: workers,
	}
}

func (p *ConsumerPool) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		logger := p.logger.With(zap.Int("worker", i))
		g.Go(func() error {
			return p.work(ctx, logger)
		})
	}
	return g.Wait()
}

func (p *ConsumerPool) work(ctx context.Context, logger *zap.Logger) error {
	for {
		if err := p.queue.SignalDemand(ctx, 1); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-p.queue.Dispatched():
			p.handle(ctx, logger, req)
		}
	}
}

func (p *ConsumerPool) handle(ctx context.Context, logger *zap.Logger, req model.Request) {
	logger = logger.With(zap.String("request_id", req.ID), zap.String("type", req.Type))

	result, err := p.invoke(ctx, req)
	if err != nil {
		logger.Warn("request failed", zap.Error(err))
		if markErr := p.queue.MarkFailed(ctx, req.ID, err.Error()); markErr != nil {
			logger.Error("mark failed", zap.Error(markErr))
		}
		return
	}
	if markErr := p.queue.MarkCompleted(ctx, req.ID, result); markErr != nil {
		logger.Error("mark completed", zap.Error(markErr))
	}
}

func (p *ConsumerPool) invoke(ctx context.Context, req model.Request) (result json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return p.handler.Handle(ctx, req)
}

// AuditHandler acknowledges a request by recording it in the ledger.
type AuditHandler struct {
	NodeID string
	Audit  AuditRecorder
}

func (h AuditHandler) Handle(_ context.Context, req model.Request) (json.RawMessage, error) {
	tx, err := h.Audit.RecordEvent(EventRequestProcessed, map[string]any{
		"request_id": req.ID,
		"type":       req.Type,
		"priority":   string(req.Priority),
	}, h.NodeID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]string{"processed_by": h.NodeID, "transaction_id": tx.ID})
}
