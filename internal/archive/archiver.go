// Package archive mirrors ledger blocks into the ClickHouse archive.
package archive

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/elias-federation/internal/clock"
	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/batcher"
)

type Config struct {
	BatchSize     int
	FlushInterval time.Duration
	// FlushRate caps archive writes per second.
	FlushRate     int
	// StateRetry is the wait between attempts to read the archive state at start.
	StateRetry    time.Duration
}

// Archiver receives appended blocks from the ledger and writes them in batches.
// Blocks lost to a failed flush are picked up by the backfill on the next start.
type Archiver struct {
	repo       Repository
	ledger     Ledger
	batcher    *batcher.Batcher[model.Block]
	stateRetry time.Duration
	logger     *zap.Logger
}

func New(cfg Config, repo Repository, ledger Ledger, logger *zap.Logger) *Archiver {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.FlushRate <= 0 {
		cfg.FlushRate = defaultFlushRate
	}
	if cfg.StateRetry <= 0 {
		cfg.StateRetry = defaultStateRetry
	}

	a := &Archiver{
		repo:       repo,
		ledger:     ledger,
		stateRetry: cfg.StateRetry,
		logger:     logger.Named("archiver"),
	}
	a.batcher = batcher.New(a.logger, a.flush, cfg.BatchSize, cfg.FlushInterval,
		batcher.WithRate[model.Block](cfg.FlushRate),
		batcher.WithErrorHandler(func(blocks []model.Block, err error) {
			a.logger.Warn("blocks not archived",
				zap.Uint64("from_height", blocks[0].Height),
				zap.Int("count", len(blocks)),
				zap.Error(err),
			)
		}),
	)
	return a
}

// BlockAppended queues a block for archiving without holding up the ledger for long.
func (a *Archiver) BlockAppended(ctx context.Context, block model.Block) {
	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if err := a.batcher.Add(ctx, block); err != nil {
		a.logger.Warn("block dropped from archive queue",
			zap.Uint64("height", block.Height),
			zap.String("hash", block.Hash),
			zap.Error(err),
		)
	}
}

// Run backfills blocks missing from the archive, then archives new blocks until ctx is done.
// An unreachable archive never stops the node: the state read is retried until it succeeds.
func (a *Archiver) Run(ctx context.Context) error {
	state, err := a.readState(ctx)
	if err != nil {
		return err
	}

	a.batcher.Start(ctx)
	defer a.batcher.Stop()

	from := resumeHeight(state)
	missing := a.ledger.BlocksFrom(from)
	a.logger.Info("archive resumed",
		zap.Uint64("archived_blocks", state.Blocks),
		zap.Uint64("from_height", from),
		zap.Int("backfill", len(missing)),
	)
	for _, block := range missing {
		if err := a.batcher.Add(ctx, block); err != nil {
			return err
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

// readState returns the archive state, retrying until ctx is done.
func (a *Archiver) readState(ctx context.Context) (model.ArchiveState, error) {
	for attempt := 1; ; attempt++ {
		state, err := a.repo.ArchiveState(ctx)
		if err == nil {
			return state, nil
		}
		if ctx.Err() != nil {
			return model.ArchiveState{}, ctx.Err()
		}
		a.logger.Warn("read archive state failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", a.stateRetry),
			zap.Error(err),
		)
		if err := clock.SleepWithContext(ctx, a.stateRetry); err != nil {
			return model.ArchiveState{}, err
		}
	}
}

func (a *Archiver) flush(ctx context.Context, blocks []model.Block) error {
	if err := a.repo.InsertBlocks(ctx, blocks); err != nil {
		return err
	}
	return a.repo.InsertTransactions(ctx, blocks)
}

func resumeHeight(state model.ArchiveState) uint64 {
	if state.Blocks == 0 {
		return 0
	}
	return state.MaxHeight + 1
}
