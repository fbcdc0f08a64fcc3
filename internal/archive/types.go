package archive

import (
	"context"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertTransactions(ctx context.Context, blocks []model.Block) error
		ArchiveState(ctx context.Context) (model.ArchiveState, error)
	}

	// Ledger is the chain the archiver backfills from.
	Ledger interface {
		BlocksFrom(from uint64) []model.Block
	}
)
