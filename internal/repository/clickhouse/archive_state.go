package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

// ArchiveState returns how many distinct heights are archived and the highest one.
func (r *Repository) ArchiveState(ctx context.Context) (state model.ArchiveState, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("archive_state", 0, err, start)
	}()

	const query = `
SELECT
	uniqExact(height) AS blocks,
	coalesce(max(height), toUInt64(0)) AS max_height
FROM ledger_blocks`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.ArchiveState{}, fmt.Errorf("query archive state: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.ArchiveState{}, fmt.Errorf("iterate archive state: %w", err)
		}
		err = fmt.Errorf("archive state not found")
		return model.ArchiveState{}, err
	}

	if err = rows.Scan(&state.Blocks, &state.MaxHeight); err != nil {
		return model.ArchiveState{}, fmt.Errorf("scan archive state: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.ArchiveState{}, fmt.Errorf("iterate archive state: %w", err)
	}
	return state, nil
}
