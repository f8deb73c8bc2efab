package model

import "github.com/shopspring/decimal"

// RawTransaction is the untyped shape a transaction arrives in before
// validation — every field optional from the type system's perspective,
// even though most are required by the validator.
type RawTransaction struct {
	BlockNumber      int64
	BlockHash        string
	TransactionHash  string
	TransactionIndex int64
	FromAddress      string
	ToAddress        *string
	Amount           string
	IsInternalCall   bool
}

// Transaction is the canonical validated shape. Amount is an exact
// arbitrary-precision non-negative integer — never float64 — represented
// on the wire as a decimal string and here as decimal.Decimal so callers
// can't accidentally lose precision by converting to a float.
type Transaction struct {
	BlockNumber      int64
	BlockHash        string
	TransactionHash  string
	TransactionIndex int64
	FromAddress      string
	ToAddress        *string
	Amount           decimal.Decimal
	IsInternalCall   bool
}

// FailureReason is one entry of a validation failure report. Flat, not
// nested, so a future wire-format codec can stream these independently
// of the records that did validate.
type FailureReason struct {
	BlockNumber int64
	Reason      string
}
