// Package validator implements the schema validator: total, panic-free
// structural and semantic validation of a raw transaction before it is
// allowed to reach persistence. Built on jellydator/validation, the same
// struct-field validation library the teacher uses for its HTTP payload
// package, generalized here from request bodies to chain data.
package validator

import (
	"fmt"
	"regexp"

	"github.com/evmchain/indexer/internal/model"
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	hashPattern    = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	addressPattern = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
)

// Outcome is the structured result of validating one raw transaction:
// either a validated Record, or a non-empty Reasons report. Exactly one
// of the two is populated.
type Outcome struct {
	OK      bool
	Record  model.Transaction
	Reasons []model.FailureReason
}

// Validator validates raw transactions into the canonical record shape.
// Stateless; safe for concurrent use.
type Validator struct{}

// New constructs a Validator.
func New() Validator {
	return Validator{}
}

// Validate runs total validation: every field is checked regardless of
// earlier failures, and the result is a structured Outcome — never a
// panic, never a short-circuit that skips the amount refinement because
// an address failed. Structural field checks run through
// jellydator/validation; the amount refinement (exact, non-negative,
// integer) is a decimal parse no struct-tag rule expresses precisely.
func (v Validator) Validate(raw model.RawTransaction) Outcome {
	var reasons []model.FailureReason

	addReason := func(format string, args ...any) {
		reasons = append(reasons, model.FailureReason{
			BlockNumber: raw.BlockNumber,
			Reason:      fmt.Sprintf(format, args...),
		})
	}

	if err := validation.Validate(raw.BlockNumber, validation.Min(int64(0))); err != nil {
		addReason("block_number: %s", err)
	}

	if err := validation.Validate(raw.BlockHash, validation.Required, validation.Match(hashPattern)); err != nil {
		addReason("block_hash: %s", err)
	}

	if err := validation.Validate(raw.TransactionHash, validation.Required, validation.Match(hashPattern)); err != nil {
		addReason("transaction_hash: %s", err)
	}

	if err := validation.Validate(raw.TransactionIndex, validation.Min(int64(0))); err != nil {
		addReason("transaction_index: %s", err)
	}

	if err := validation.Validate(raw.FromAddress, validation.Required, validation.Match(addressPattern)); err != nil {
		addReason("from_address: %s", err)
	}

	if raw.ToAddress != nil {
		if *raw.ToAddress == "" {
			addReason("to_address must be absent, not empty, for contract creation")
		} else if err := validation.Validate(*raw.ToAddress, validation.Match(addressPattern)); err != nil {
			addReason("to_address: %s", err)
		}
	}

	amount, amountErr := parseAmount(raw.Amount)
	if amountErr != nil {
		addReason("amount: %s", amountErr)
	}

	if len(reasons) > 0 {
		return Outcome{OK: false, Reasons: reasons}
	}

	return Outcome{
		OK: true,
		Record: model.Transaction{
			BlockNumber:      raw.BlockNumber,
			BlockHash:        raw.BlockHash,
			TransactionHash:  raw.TransactionHash,
			TransactionIndex: raw.TransactionIndex,
			FromAddress:      raw.FromAddress,
			ToAddress:        raw.ToAddress,
			Amount:           amount,
			IsInternalCall:   raw.IsInternalCall,
		},
	}
}

// parseAmount verifies the amount string is an exact non-negative
// integer: no fractional part, no sign. decimal.Decimal never loses
// precision the way float64 would for 256-bit wei values.
func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a valid integer: %w", err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("must not be negative")
	}
	if !d.Equal(d.Truncate(0)) {
		return decimal.Decimal{}, fmt.Errorf("must not have a fractional part")
	}
	return d, nil
}
