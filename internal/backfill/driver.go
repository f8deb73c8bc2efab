// Package backfill implements the parallel-range backfill driver:
// fetch a batch of blocks concurrently, validate, commit via
// bulk-ingest, advance. A failure in any block after the transport's
// own retries aborts the run — the operator re-runs, and bulk-ingest's
// ON CONFLICT DO NOTHING guarantees no duplication.
package backfill

import (
	"context"
	"fmt"
	"sort"

	"github.com/evmchain/indexer/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Driver runs backfill ranges against a transport, store, and validator.
type Driver struct {
	logs      *zap.SugaredLogger
	transport Transport
	store     Store
	validator Validator
}

// NewDriver is a constructor function for the Driver type.
func NewDriver(logger *zap.SugaredLogger, transport Transport, store Store, validator Validator) *Driver {
	return &Driver{logs: logger, transport: transport, store: store, validator: validator}
}

// Run processes [start, end) in consecutive ranges of batchBlocks,
// fetching each range's blocks in parallel and committing it with one
// bulk-ingest call before advancing to the next range.
func (d *Driver) Run(ctx context.Context, start, end, batchBlocks int64) error {
	runID := uuid.NewString()
	logs := d.logs.With("run_id", runID)

	if batchBlocks <= 0 {
		return fmt.Errorf("batch_blocks must be positive, got %d", batchBlocks)
	}

	checkpoint, err := d.store.ReadCheckpoint(ctx)
	if err == nil && start <= checkpoint.BlockNumber {
		logs.Warnw("start already committed by the daemon, clamping",
			"requested_start", start, "checkpoint", checkpoint.BlockNumber)
		start = checkpoint.BlockNumber + 1
	}

	logs.Infow("backfill run starting", "start", start, "end", end, "batch_blocks", batchBlocks)

	for cur := start; cur < end; cur += batchBlocks {
		rangeEnd := cur + batchBlocks
		if rangeEnd > end {
			rangeEnd = end
		}

		records, err := d.fetchRange(ctx, logs, cur, rangeEnd)
		if err != nil {
			return fmt.Errorf("backfill run %s aborted at range [%d,%d): %w", runID, cur, rangeEnd, err)
		}

		if err := d.store.BulkIngest(ctx, records); err != nil {
			return fmt.Errorf("backfill run %s: bulk ingest [%d,%d): %w", runID, cur, rangeEnd, err)
		}

		logs.Infow("backfill range committed", "range_start", cur, "range_end", rangeEnd, "records", len(records))
	}

	logs.Infow("backfill run complete", "start", start, "end", end)
	return nil
}

// fetchRange fetches every block in [from, to) in parallel, validating
// as each arrives. errgroup.WithContext cancels the remaining in-flight
// fetches as soon as one exhausts its retries.
func (d *Driver) fetchRange(ctx context.Context, logs *zap.SugaredLogger, from, to int64) ([]model.Transaction, error) {
	g, gctx := errgroup.WithContext(ctx)

	type blockResult struct {
		number  int64
		records []model.Transaction
	}
	results := make([]blockResult, to-from)

	for i := from; i < to; i++ {
		idx := i - from
		number := i
		g.Go(func() error {
			block, err := d.transport.FetchBlockWithTransactions(gctx, number)
			if err != nil {
				return fmt.Errorf("fetch block %d: %w", number, err)
			}

			records := make([]model.Transaction, 0, len(block.Transactions))
			for _, raw := range block.Transactions {
				out := d.validator.Validate(raw)
				if !out.OK {
					logs.Warnw("transaction failed validation during backfill", "block", number, "reasons", out.Reasons)
					continue
				}
				records = append(records, out.Record)
			}

			results[idx] = blockResult{number: number, records: records}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].number < results[j].number })

	var all []model.Transaction
	for _, r := range results {
		all = append(all, r.records...)
	}
	return all, nil
}
