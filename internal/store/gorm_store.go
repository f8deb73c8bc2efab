package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormStore is the row-at-a-time transactional path: append-batch and
// rollback-to, where GORM's conflict clauses and DB.Transaction
// closures fit naturally. Exported DB field, same as the teacher's
// PostgresDB, so tests can inject a sqlmock-backed *gorm.DB directly.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore opens a GORM connection against dsn.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &GormStore{DB: db}, nil
}

// Migrate creates the transactions and checkpoints tables if absent.
func (s *GormStore) Migrate() error {
	if err := s.DB.AutoMigrate(&transactionRow{}, &checkpointRow{}); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}

func (s *GormStore) AppendBatch(ctx context.Context, records []model.Transaction) error {
	if len(records) == 0 {
		return nil
	}

	rows := toRows(records)
	maxNumber, maxHash := maxBlock(records)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return fmt.Errorf("insert batch: %w", err)
		}
		return upsertCheckpoint(tx, maxNumber, maxHash)
	})
	if err != nil {
		return fmt.Errorf("append batch: %w", errors.Join(err, errkind.ErrPersistence))
	}
	return nil
}

// RollbackTo atomically deletes every row with block_number >= target
// and rewinds the checkpoint to (target-1, hash). An empty hash leaves
// the stored hash untouched — the daemon's re-org branch re-verifies
// lineage on the very next iteration and doesn't need a fresh one yet.
func (s *GormStore) RollbackTo(ctx context.Context, target int64, hash string) error {
	if target < 0 {
		return fmt.Errorf("rollback target must be non-negative: %w", errkind.ErrPrecondition)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("block_number >= ?", target).Delete(&transactionRow{}).Error; err != nil {
			return fmt.Errorf("delete rolled-back rows: %w", err)
		}

		var cp checkpointRow
		err := tx.Where("id = ?", model.CheckpointID).First(&cp).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			cp = checkpointRow{ID: model.CheckpointID}
		case err != nil:
			return fmt.Errorf("read checkpoint: %w", err)
		}

		cp.BlockNumber = target - 1
		if hash != "" {
			cp.BlockHash = hash
		}
		cp.LastUpdated = time.Now()

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"block_number", "block_hash", "last_updated"}),
		}).Create(&cp).Error; err != nil {
			return fmt.Errorf("rewind checkpoint: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rollback to %d: %w", target, errors.Join(err, errkind.ErrRollback))
	}
	return nil
}

func (s *GormStore) ReadCheckpoint(ctx context.Context) (model.Checkpoint, error) {
	var cp checkpointRow
	err := s.DB.WithContext(ctx).Where("id = ?", model.CheckpointID).First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Checkpoint{}, errkind.ErrNotFound
		}
		return model.Checkpoint{}, fmt.Errorf("read checkpoint: %w", err)
	}
	return model.Checkpoint{
		ID:          cp.ID,
		BlockNumber: cp.BlockNumber,
		BlockHash:   cp.BlockHash,
		LastUpdated: cp.LastUpdated,
	}, nil
}

func (s *GormStore) AdvanceCheckpoint(ctx context.Context, number int64, hash string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertCheckpoint(tx, number, hash)
	})
	if err != nil {
		return fmt.Errorf("advance checkpoint: %w", errors.Join(err, errkind.ErrPersistence))
	}
	return nil
}

func upsertCheckpoint(tx *gorm.DB, number int64, hash string) error {
	cp := checkpointRow{
		ID:          model.CheckpointID,
		BlockNumber: number,
		BlockHash:   hash,
		LastUpdated: time.Now(),
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"block_number", "block_hash", "last_updated"}),
	}).Create(&cp).Error
	if err != nil {
		return fmt.Errorf("upsert checkpoint: %w", err)
	}
	return nil
}

func toRows(records []model.Transaction) []transactionRow {
	rows := make([]transactionRow, len(records))
	for i, r := range records {
		rows[i] = transactionRow{
			TransactionHash:  r.TransactionHash,
			BlockNumber:      r.BlockNumber,
			BlockHash:        r.BlockHash,
			TransactionIndex: r.TransactionIndex,
			FromAddress:      r.FromAddress,
			ToAddress:        r.ToAddress,
			Amount:           r.Amount.String(),
			IsInternalCall:   r.IsInternalCall,
		}
	}
	return rows
}

// maxBlock computes (maxBlock, maxHash) across a batch, the pair the
// checkpoint is upserted to on a successful commit.
func maxBlock(records []model.Transaction) (int64, string) {
	var maxNumber int64 = -1
	var maxHash string
	for _, r := range records {
		if r.BlockNumber > maxNumber {
			maxNumber = r.BlockNumber
			maxHash = r.BlockHash
		}
	}
	return maxNumber, maxHash
}
