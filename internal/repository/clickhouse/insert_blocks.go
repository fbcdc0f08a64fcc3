package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/safe"
)

// InsertBlocks stores block headers in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", len(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_blocks (
	height,
	hash,
	previous_hash,
	merkle_root,
	timestamp,
	nonce,
	difficulty,
	miner,
	mining_time_ms,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		var row blockRow
		row, err = newBlockRow(block)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("block %d: %w", block.Height, err)
		}
		if err = batch.Append(
			block.Height,
			block.Hash,
			block.PreviousHash,
			block.MerkleRoot,
			time.UnixMilli(block.Timestamp).UTC(),
			block.Nonce,
			row.difficulty,
			block.Miner,
			row.miningTimeMs,
			row.txCount,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

type blockRow struct {
	difficulty   uint8
	miningTimeMs uint64
	txCount      uint32
}

func newBlockRow(block model.Block) (blockRow, error) {
	difficulty, err := safe.Uint8(block.Difficulty)
	if err != nil {
		return blockRow{}, fmt.Errorf("difficulty: %w", err)
	}
	miningTime, err := safe.Uint64(block.MiningTimeMs)
	if err != nil {
		return blockRow{}, fmt.Errorf("mining time: %w", err)
	}
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return blockRow{}, fmt.Errorf("tx count: %w", err)
	}
	return blockRow{difficulty: difficulty, miningTimeMs: miningTime, txCount: txCount}, nil
}
