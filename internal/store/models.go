package store

import "time"

// transactionRow is the GORM-tagged shape a model.Transaction is
// persisted as. The primary key is the composite (transaction_hash,
// block_number) pair the idempotence invariant is keyed on, not
// transaction_hash alone; block_number also has to carry the key for
// the range-partitioning story. amount is NUMERIC(78,0): enough digits
// for the largest practical wei value, never float64 or a fixed-width
// integer.
type transactionRow struct {
	TransactionHash  string  `gorm:"column:transaction_hash;size:66;primaryKey"`
	BlockNumber      int64   `gorm:"column:block_number;not null;primaryKey;index"`
	BlockHash        string  `gorm:"column:block_hash;size:66;not null"`
	TransactionIndex int64   `gorm:"column:transaction_index;not null"`
	FromAddress      string  `gorm:"column:from_address;size:42;not null;index"`
	ToAddress        *string `gorm:"column:to_address;size:42;index"`
	Amount           string  `gorm:"column:amount;type:numeric(78,0);not null"`
	IsInternalCall   bool    `gorm:"column:is_internal_call;not null;default:false"`
}

func (transactionRow) TableName() string { return "transactions" }

// checkpointRow is the single-row durable cursor. ID is always
// model.CheckpointID; the store never holds a second row.
type checkpointRow struct {
	ID          string    `gorm:"column:id;primaryKey;size:32"`
	BlockNumber int64     `gorm:"column:block_number;not null"`
	BlockHash   string    `gorm:"column:block_hash;size:66;not null"`
	LastUpdated time.Time `gorm:"column:last_updated;not null"`
}

func (checkpointRow) TableName() string { return "checkpoints" }
