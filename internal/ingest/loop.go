// Package ingest implements the re-org-safe ingestion state machine:
// Bootstrapping, Syncing, AtHead, Reorganizing. Mirrors the teacher's
// Fethcher struct-with-explicit-constructor style, holding its
// dependencies as narrow ports instead of concrete types.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rpc"

	"go.uber.org/zap"
)

// State names one phase of the ingestion state machine, used only for
// logging and metrics — the loop never branches on its own past state,
// only on what step re-derives from the checkpoint and chain head.
type State string

const (
	Bootstrapping State = "bootstrapping"
	Syncing       State = "syncing"
	AtHead        State = "at_head"
	Reorganizing  State = "reorganizing"
)

type noopMetrics struct{}

func (noopMetrics) IncReorgsDetected()             {}
func (noopMetrics) SetLatestIndexedBlock(int64)    {}
func (noopMetrics) ObserveIndexingLatency(float64) {}

// Loop is the ingestion daemon's core. Run blocks until ctx is
// cancelled or a rollback fails, polling at pollingPeriod and backing
// off errorBackoff on any other iteration failure.
type Loop struct {
	logs      *zap.SugaredLogger
	transport Transport
	store     Store
	validator Validator
	metrics   Metrics

	pollingPeriod time.Duration
	errorBackoff  time.Duration
}

// Config tunes the loop's cadence. Zero fields fall back to the spec's
// defaults (2s poll, 5s error backoff).
type Config struct {
	PollingPeriod time.Duration
	ErrorBackoff  time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollingPeriod == 0 {
		c.PollingPeriod = 2 * time.Second
	}
	if c.ErrorBackoff == 0 {
		c.ErrorBackoff = 5 * time.Second
	}
	return c
}

// NewLoop is a constructor function for the Loop type. metrics may be
// nil, in which case observations are discarded.
func NewLoop(logger *zap.SugaredLogger, transport Transport, store Store, validator Validator, metrics Metrics, cfg Config) *Loop {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	cfg = cfg.withDefaults()
	return &Loop{
		logs:          logger,
		transport:     transport,
		store:         store,
		validator:     validator,
		metrics:       metrics,
		pollingPeriod: cfg.PollingPeriod,
		errorBackoff:  cfg.ErrorBackoff,
	}
}

// Run drives the state machine until ctx is cancelled. A failed
// rollback (errkind.ErrRollback) is fatal: Run returns it at once
// instead of retrying against a possibly half-reverted store.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		state, err := l.Step(ctx)
		if errors.Is(err, errkind.ErrRollback) {
			l.logs.Errorw("rollback failed, halting ingestion", "error", err)
			return err
		}
		if err != nil {
			l.logs.Errorw("ingestion iteration failed", "error", err)
			if !sleepCtx(ctx, l.errorBackoff) {
				return ctx.Err()
			}
			continue
		}

		if state == AtHead {
			if !sleepCtx(ctx, l.pollingPeriod) {
				return ctx.Err()
			}
		}
	}
}

// Step runs exactly one iteration of the state machine and returns the
// state it ended in. Exported so tests drive one step at a time.
func (l *Loop) Step(ctx context.Context) (State, error) {
	dbHead, err := l.store.ReadCheckpoint(ctx)
	if errors.Is(err, errkind.ErrNotFound) {
		return l.bootstrap(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("read checkpoint: %w", err)
	}

	chainHead, err := l.transport.CurrentHead(ctx)
	if err != nil {
		return "", fmt.Errorf("read chain head: %w", err)
	}

	target := dbHead.BlockNumber + 1
	if target > chainHead.Number {
		return AtHead, nil
	}

	header, err := l.transport.FetchBlockHeader(ctx, target)
	if err != nil {
		return "", fmt.Errorf("fetch header %d: %w", target, err)
	}

	if header.ParentHash != dbHead.BlockHash {
		l.logs.Warnw("lineage mismatch, rolling back",
			"db_block", dbHead.BlockNumber, "db_hash", dbHead.BlockHash,
			"target", target, "target_parent_hash", header.ParentHash)
		l.metrics.IncReorgsDetected()
		if err := l.store.RollbackTo(ctx, dbHead.BlockNumber, ""); err != nil {
			return "", fmt.Errorf("rollback to %d: %w", dbHead.BlockNumber, err)
		}
		return Reorganizing, nil
	}

	if err := l.commitBlock(ctx, target, header); err != nil {
		return "", err
	}
	return Syncing, nil
}

func (l *Loop) bootstrap(ctx context.Context) (State, error) {
	chainHead, err := l.transport.CurrentHead(ctx)
	if err != nil {
		return "", fmt.Errorf("read chain head: %w", err)
	}
	if err := l.commitBlock(ctx, chainHead.Number, chainHead); err != nil {
		return "", err
	}
	return Bootstrapping, nil
}

// commitBlock fetches the full block at number, validates its
// transactions, and persists the result. A block with zero transactions
// still advances the checkpoint so progress stays monotonic.
func (l *Loop) commitBlock(ctx context.Context, number int64, header rpc.Header) error {
	block, err := l.transport.FetchBlockWithTransactions(ctx, number)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", number, err)
	}

	if len(block.Transactions) == 0 {
		if err := l.store.AdvanceCheckpoint(ctx, number, header.Hash); err != nil {
			return fmt.Errorf("advance checkpoint past empty block %d: %w", number, err)
		}
	} else {
		records := make([]model.Transaction, 0, len(block.Transactions))
		var failures []model.FailureReason
		for _, raw := range block.Transactions {
			out := l.validator.Validate(raw)
			if !out.OK {
				failures = append(failures, out.Reasons...)
				continue
			}
			records = append(records, out.Record)
		}
		if len(failures) > 0 {
			l.logs.Warnw("transactions failed validation", "block", number, "failures", failures)
		}
		if err := l.store.AppendBatch(ctx, records); err != nil {
			return fmt.Errorf("append batch for block %d: %w", number, err)
		}
	}

	l.metrics.SetLatestIndexedBlock(number)
	l.metrics.ObserveIndexingLatency(time.Since(time.Unix(header.Timestamp, 0)).Seconds())
	l.logs.Infow("block committed", "block", number, "hash", header.Hash, "tx_count", len(block.Transactions))
	return nil
}

// sleepCtx sleeps for d or until ctx is cancelled, reporting which
// happened first so callers can distinguish a normal tick from shutdown.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
