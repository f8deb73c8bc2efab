package store

import (
	"context"
	"fmt"
	"time"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BulkLoader is bulk-ingest's staging-table + COPY FROM path: GORM has
// no streaming bulk-load primitive, so large backfill batches go
// through pgx directly, alongside (not instead of) the GORM path the
// rest of the store uses.
type BulkLoader struct {
	pool *pgxpool.Pool
}

// NewBulkLoader opens a pgx pool against dsn, independent of the GORM
// connection GormStore holds — the two paths share a Postgres instance,
// not a connection.
func NewBulkLoader(ctx context.Context, dsn string) (*BulkLoader, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open bulk loader pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping bulk loader pool: %w", err)
	}
	return &BulkLoader{pool: pool}, nil
}

// Close releases the pool.
func (b *BulkLoader) Close() { b.pool.Close() }

// BulkIngest loads records through an unlogged staging table populated
// with CopyFrom, then moves them into transactions with
// ON CONFLICT DO NOTHING, and advances the checkpoint — the same
// invariant AppendBatch keeps, on the driver's fastest bulk-load path.
func (b *BulkLoader) BulkIngest(ctx context.Context, records []model.Transaction) error {
	if len(records) == 0 {
		return nil
	}
	maxNumber, maxHash := maxBlock(records)

	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin bulk ingest: %w", errkind.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback(ctx)
		}
	}()

	const stagingTable = "transactions_staging"
	if _, err := tx.Exec(ctx, fmt.Sprintf(`
		CREATE TEMP TABLE %s (
			transaction_hash text, block_number bigint, block_hash text,
			transaction_index bigint, from_address text, to_address text,
			amount numeric(78,0), is_internal_call boolean
		) ON COMMIT DROP`, stagingTable)); err != nil {
		return fmt.Errorf("create staging table: %w", err)
	}

	rows := make([][]any, len(records))
	for i, r := range records {
		var to any
		if r.ToAddress != nil {
			to = *r.ToAddress
		}
		rows[i] = []any{
			r.TransactionHash, r.BlockNumber, r.BlockHash,
			r.TransactionIndex, r.FromAddress, to,
			r.Amount.String(), r.IsInternalCall,
		}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{stagingTable},
		[]string{"transaction_hash", "block_number", "block_hash", "transaction_index", "from_address", "to_address", "amount", "is_internal_call"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy into staging table: %w", err)
	}

	if _, err := tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO transactions (transaction_hash, block_number, block_hash, transaction_index, from_address, to_address, amount, is_internal_call)
		SELECT transaction_hash, block_number, block_hash, transaction_index, from_address, to_address, amount, is_internal_call
		FROM %s
		ON CONFLICT (transaction_hash, block_number) DO NOTHING`, stagingTable)); err != nil {
		return fmt.Errorf("move staged rows: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO checkpoints (id, block_number, block_hash, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET block_number = EXCLUDED.block_number, block_hash = EXCLUDED.block_hash, last_updated = EXCLUDED.last_updated`,
		model.CheckpointID, maxNumber, maxHash, time.Now()); err != nil {
		return fmt.Errorf("advance checkpoint: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bulk ingest: %w", err)
	}
	committed = true
	return nil
}
