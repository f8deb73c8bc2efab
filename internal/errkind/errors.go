// Package errkind names the error categories that cross component
// boundaries: each maps to exactly one propagation policy, enforced by
// callers via errors.Is/errors.As rather than string matching.
package errkind

import "errors"

var (
	// ErrTransientRPC wraps a provider error that retry with backoff may
	// still resolve: connection reset, 429, 5xx, timeout.
	ErrTransientRPC = errors.New("transient rpc error")

	// ErrValidation marks a record that failed schema validation. Never
	// aborts a batch; the record is diverted to a failure report.
	ErrValidation = errors.New("record failed validation")

	// ErrPersistence marks a failed transaction against the store:
	// constraint violation, connection loss mid-commit. The transaction
	// has been rolled back by the time this is returned.
	ErrPersistence = errors.New("persistence error")

	// ErrRollback marks a rollback-to failure. Fatal: the caller must
	// halt rather than continue against a possibly half-reverted store.
	ErrRollback = errors.New("rollback failed")

	// ErrPrecondition marks a refused operation: the caller asked for
	// something the current state does not allow (e.g. roll forward).
	ErrPrecondition = errors.New("precondition failed")

	// ErrNotFound marks the absence of a row a caller expected, distinct
	// from ErrPersistence because it is not itself a failure to persist.
	ErrNotFound = errors.New("record not found")
)
