package ingest

import (
	"context"

	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/validator"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Transport is the subset of *rpc.Transport the loop drives.
//
//counterfeiter:generate -o fake -fake-name Transport . Transport
type Transport interface {
	CurrentHead(ctx context.Context) (rpc.Header, error)
	FetchBlockHeader(ctx context.Context, n int64) (rpc.Header, error)
	FetchBlockWithTransactions(ctx context.Context, n int64) (rpc.Block, error)
}

// Store is the subset of store.Store the loop drives.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	AppendBatch(ctx context.Context, records []model.Transaction) error
	RollbackTo(ctx context.Context, target int64, hash string) error
	ReadCheckpoint(ctx context.Context) (model.Checkpoint, error)
	AdvanceCheckpoint(ctx context.Context, number int64, hash string) error
}

// Validator is the subset of validator.Validator the loop drives.
//
//counterfeiter:generate -o fake -fake-name Validator . Validator
type Validator interface {
	Validate(raw model.RawTransaction) validator.Outcome
}

// Metrics is the observability contract the loop reports through. A
// no-op implementation is used when metrics are not wired.
//
//counterfeiter:generate -o fake -fake-name Metrics . Metrics
type Metrics interface {
	IncReorgsDetected()
	SetLatestIndexedBlock(n int64)
	ObserveIndexingLatency(seconds float64)
}
