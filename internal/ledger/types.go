package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store persists the full chain. Load returns an empty slice when nothing was saved yet.
	Store interface {
		Load() ([]model.Block, error)
		Save(blocks []model.Block) error
	}
	// Broadcaster announces a freshly mined block to every known peer. No reply is expected.
	Broadcaster interface {
		BroadcastBlock(ctx context.Context, block model.Block)
	}
	// BlockSink observes every block appended to the local chain.
	BlockSink interface {
		BlockAppended(ctx context.Context, block model.Block)
	}
	Metrics interface {
		ObserveMining(err error, attempts uint64, started time.Time)
		ObserveBlockReceived(result string)
		ObserveEventRecorded()
		ObservePendingDropped(n int)
		SetChain(height uint64, pending int)
	}
)
