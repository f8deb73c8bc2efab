package backfill

import (
	"context"

	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/validator"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Transport is the subset of *rpc.Transport the backfill driver drives.
//
//counterfeiter:generate -o fake -fake-name Transport . Transport
type Transport interface {
	FetchBlockWithTransactions(ctx context.Context, n int64) (rpc.Block, error)
}

// Store is the subset of store.Store the backfill driver drives.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	BulkIngest(ctx context.Context, records []model.Transaction) error
	ReadCheckpoint(ctx context.Context) (model.Checkpoint, error)
}

// Validator is the subset of validator.Validator the backfill driver
// drives.
//
//counterfeiter:generate -o fake -fake-name Validator . Validator
type Validator interface {
	Validate(raw model.RawTransaction) validator.Outcome
}
