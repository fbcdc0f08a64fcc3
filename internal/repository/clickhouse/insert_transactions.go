package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/safe"
)

// InsertTransactions stores the transactions carried by blocks, keyed by block height and position.
func (r *Repository) InsertTransactions(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	rows := countTransactions(blocks)
	defer func() {
		r.metrics.Observe("insert_transactions", rows, err, start)
	}()

	if rows == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_transactions (
	id,
	block_height,
	block_hash,
	position,
	timestamp,
	event_type,
	origin_node,
	signature,
	data
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, block := range blocks {
		for i, tx := range block.Transactions {
			var position uint32
			position, err = safe.Uint32(i)
			if err != nil {
				_ = batch.Abort()
				return fmt.Errorf("transaction %s position: %w", tx.ID, err)
			}
			var data []byte
			data, err = json.Marshal(tx.Data)
			if err != nil {
				_ = batch.Abort()
				return fmt.Errorf("encode transaction %s data: %w", tx.ID, err)
			}
			if err = batch.Append(
				tx.ID,
				block.Height,
				block.Hash,
				position,
				time.UnixMilli(tx.Timestamp).UTC(),
				tx.EventType,
				tx.OriginNode,
				tx.Signature,
				string(data),
			); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append transaction: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func countTransactions(blocks []model.Block) int {
	n := 0
	for _, b := range blocks {
		n += len(b.Transactions)
	}
	return n
}
