// Package store implements the persistence layer's three contracts —
// append-batch, bulk-ingest, rollback-to — plus the single-row
// checkpoint that is the sole source of truth for resume position.
package store

import (
	"context"

	"github.com/evmchain/indexer/internal/model"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store is the persistence contract the ingestion loop, backfill
// driver, and rollback command all depend on. Every method that writes
// checks out one connection, runs one transaction, and releases it on
// every exit path; ReadCheckpoint is a single query outside a
// transaction.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	// AppendBatch inserts records and advances the checkpoint in one
	// transaction, for small real-time batches. ON CONFLICT DO NOTHING
	// on the (transaction_hash, block_number) primary key makes it
	// idempotent (P2).
	AppendBatch(ctx context.Context, records []model.Transaction) error

	// BulkIngest does the same as AppendBatch but through the driver's
	// fastest bulk-load path, for large backfill batches.
	BulkIngest(ctx context.Context, records []model.Transaction) error

	// RollbackTo atomically deletes every row with block_number >= target
	// and rewinds the checkpoint to (target-1, hash). hash is the
	// caller-supplied replacement block_hash for the new checkpoint head;
	// pass the empty string to leave the existing hash in place (the
	// ingestion loop's re-org branch, which re-verifies lineage next
	// iteration and does not need a fresh hash yet).
	RollbackTo(ctx context.Context, target int64, hash string) error

	// ReadCheckpoint returns the current checkpoint. Returns
	// errkind.ErrNotFound if no checkpoint row exists yet (cold start).
	ReadCheckpoint(ctx context.Context) (model.Checkpoint, error)

	// AdvanceCheckpoint moves the checkpoint to (number, hash) without
	// inserting any rows, for the empty-block case: progress must stay
	// monotonic even across blocks with zero transactions.
	AdvanceCheckpoint(ctx context.Context, number int64, hash string) error
}
