package store

import (
	"context"

	"github.com/evmchain/indexer/internal/model"
)

// CombinedStore implements Store by routing append-batch, rollback-to,
// and checkpoint reads through GormStore, and bulk-ingest through
// BulkLoader's staging-table path. The two halves share one Postgres
// instance through two independent connections.
type CombinedStore struct {
	*GormStore
	Bulk *BulkLoader
}

func NewCombinedStore(gorm *GormStore, bulk *BulkLoader) *CombinedStore {
	return &CombinedStore{GormStore: gorm, Bulk: bulk}
}

func (c *CombinedStore) BulkIngest(ctx context.Context, records []model.Transaction) error {
	return c.Bulk.BulkIngest(ctx, records)
}

var _ Store = (*CombinedStore)(nil)
