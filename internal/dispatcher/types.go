package dispatcher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveSubmitted(priority model.Priority)
		ObserveDispatched(priority model.Priority, submitted time.Time)
		ObserveFinished(status model.RequestStatus)
		SetQueueDepth(priority model.Priority, depth int)
		ObserveSwept(n int)
	}
	// AuditRecorder receives lifecycle events. The ledger satisfies it.
	AuditRecorder interface {
		RecordEvent(eventType string, data map[string]any, origin string) (model.Transaction, error)
	}
	// Handler processes one dispatched request. A nil error completes it with result.
	Handler interface {
		Handle(ctx context.Context, req model.Request) (json.RawMessage, error)
	}
	// Queue is the part of the dispatcher a consumer pool needs.
	Queue interface {
		SignalDemand(ctx context.Context, n int) error
		Dispatched() <-chan model.Request
		MarkCompleted(ctx context.Context, id string, result json.RawMessage) error
		MarkFailed(ctx context.Context, id string, reason string) error
	}
)
