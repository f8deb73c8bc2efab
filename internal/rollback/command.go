package rollback

import (
	"context"
	"errors"
	"fmt"

	"github.com/evmchain/indexer/internal/errkind"

	"go.uber.org/zap"
)

// Outcome reports what a rollback run actually did.
type Outcome struct {
	PreviousHead int64
	NewHead      int64
}

// Run rewinds the store to target, refusing the request outright if it
// would roll forward instead of back. hash replaces the checkpoint's
// block_hash; pass the empty string and Run recovers the canonical hash
// for target-1 from transport itself, so an operator-initiated rollback
// never leaves the checkpoint hash stale the way the daemon's own
// reorg-branch rollback is allowed to until its next lineage check.
func Run(ctx context.Context, logs *zap.SugaredLogger, store Store, transport Transport, target int64, hash string) (Outcome, error) {
	if target < 0 {
		return Outcome{}, fmt.Errorf("%w: target block number %d is negative", errkind.ErrPrecondition, target)
	}

	checkpoint, err := store.ReadCheckpoint(ctx)
	if err != nil {
		if errors.Is(err, errkind.ErrNotFound) {
			return Outcome{}, fmt.Errorf("%w: no checkpoint exists yet, nothing to roll back", errkind.ErrPrecondition)
		}
		return Outcome{}, fmt.Errorf("read checkpoint: %w", err)
	}

	if target > checkpoint.BlockNumber {
		return Outcome{}, fmt.Errorf("%w: target %d is ahead of current checkpoint %d, rollback cannot roll forward",
			errkind.ErrPrecondition, target, checkpoint.BlockNumber)
	}

	if hash == "" && target > 0 {
		header, err := transport.FetchBlockHeader(ctx, target-1)
		if err != nil {
			return Outcome{}, fmt.Errorf("recover canonical hash for block %d: %w", target-1, err)
		}
		hash = header.Hash
	}

	logs.Infow("rollback starting", "current_head", checkpoint.BlockNumber, "target", target)

	if err := store.RollbackTo(ctx, target, hash); err != nil {
		return Outcome{}, fmt.Errorf("rollback to %d: %w", target, err)
	}

	logs.Infow("rollback complete", "previous_head", checkpoint.BlockNumber, "new_head", target-1)

	return Outcome{PreviousHead: checkpoint.BlockNumber, NewHead: target - 1}, nil
}
