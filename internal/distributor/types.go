package distributor

import (
	"context"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Transport delivers an update to one peer and returns its acknowledgment.
	Transport interface {
		PushRuleUpdate(ctx context.Context, nodeID string, pkg model.UpdatePackage) (model.RuleUpdateResponse, error)
	}
	Metrics interface {
		ObserveCheck(err error, started time.Time)
		ObserveDelivery(outcome model.DeliveryOutcome, started time.Time)
		ObserveFileUnreadable()
	}
	// AuditRecorder receives distribution events. The ledger satisfies it.
	AuditRecorder interface {
		RecordEvent(eventType string, data map[string]any, origin string) (model.Transaction, error)
	}
)
