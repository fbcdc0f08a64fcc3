package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/dispatcher"
	"github.com/goodnatureofminers/elias-federation/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RuleReceiver interface {
		Receive(ctx context.Context, pkg model.UpdatePackage) model.RuleUpdateResponse
	}
	BlockReceiver interface {
		ReceiveBlock(ctx context.Context, block model.Block) error
	}
	PeerMetrics interface {
		Observe(operation, peer string, err error, started time.Time)
	}
	Dispatcher interface {
		Submit(ctx context.Context, requestType string, payload json.RawMessage, opts dispatcher.SubmitOptions) (string, error)
		SignalDemand(ctx context.Context, n int) error
		MarkCompleted(ctx context.Context, id string, result json.RawMessage) error
		MarkFailed(ctx context.Context, id string, reason string) error
		Status(ctx context.Context, id string) (model.Request, error)
		QueueStatus(ctx context.Context) (model.QueueStatus, error)
	}
	Distributor interface {
		RegisterClient(nodeID string, ruleTypes []string) (model.ClientRegistration, error)
		Clients() []model.ClientRegistration
		DistributeUpdate(ctx context.Context, ruleType, path, content string) (model.DistributionEvent, error)
		ForceSync(ctx context.Context) ([]model.DistributionEvent, error)
		Status() model.DistributionStatus
		Events() []model.DistributionEvent
	}
	PeerDirectory interface {
		Peers() []string
	}
	Ledger interface {
		RecordEvent(eventType string, data map[string]any, origin string) (model.Transaction, error)
		MineOnce(ctx context.Context) (*model.Block, error)
		BlocksFrom(from uint64) []model.Block
		Block(hash string) (model.Block, error)
		Pending() []model.Transaction
		Status() model.ChainStatus
		Contributions() map[string]int
		Contribution(nodeID string) int
	}
)
