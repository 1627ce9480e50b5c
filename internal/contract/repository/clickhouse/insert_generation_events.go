package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

const insertGenerationEventsQuery = `
INSERT INTO generation_events (
	id,
	kind,
	contract_name,
	features,
	block_count,
	diagnostic_count,
	source_bytes,
	created_at
) VALUES`

// InsertGenerationEvents stores a batch of generation events.
func (r *Repository) InsertGenerationEvents(ctx context.Context, events []model.GenerationEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_generation_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertGenerationEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare generation events batch: %w", err)
	}

	for _, e := range events {
		features := e.Features
		if features == nil {
			features = []string{}
		}
		if err = batch.Append(
			e.ID,
			string(e.Kind),
			e.ContractName,
			features,
			e.BlockCount,
			e.DiagnosticCount,
			e.SourceBytes,
			e.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append generation event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert generation events: %w", err)
	}
	return nil
}
