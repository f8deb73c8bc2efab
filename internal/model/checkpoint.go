package model

import "time"

// CheckpointID is the constant key of the single checkpoint row. The
// store never holds more than one.
const CheckpointID = "chain_head"

// Checkpoint is the durable cursor marking the last committed head. It
// is the sole source of truth for where the ingestion loop resumes.
type Checkpoint struct {
	ID          string
	BlockNumber int64
	BlockHash   string
	LastUpdated time.Time
}
