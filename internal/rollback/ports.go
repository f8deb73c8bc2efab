// Package rollback implements the maintenance rollback command: a
// deliberate, operator-invoked rewind to a target block number, distinct
// from the ingestion loop's automatic one-block-at-a-time reorg rollback.
package rollback

import (
	"context"

	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rpc"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store is the subset of store.Store the rollback command drives.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	ReadCheckpoint(ctx context.Context) (model.Checkpoint, error)
	RollbackTo(ctx context.Context, target int64, hash string) error
}

// Transport is the subset of *rpc.Transport used to recover the
// canonical block_hash for the new checkpoint head when the operator
// does not supply one explicitly.
//
//counterfeiter:generate -o fake -fake-name Transport . Transport
type Transport interface {
	FetchBlockHeader(ctx context.Context, n int64) (rpc.Header, error)
}
