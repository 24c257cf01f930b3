package domain

import (
	"errors"
	"fmt"
)

// The engine's error taxonomy. Every error is per-call and leaves prior
// state intact, except PersistenceWarning which intentionally leaves the
// durable copy stale.

// ValidationError reports malformed input rejected before any state
// mutation. Fully recoverable by retrying with corrected input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NewValidationError creates a ValidationError with the given reason
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrNotFound is returned when an operation references a goal or category
// that does not exist. The call is a no-op with respect to state.
var ErrNotFound = errors.New("not found")

// ErrPreconditionFailed is returned when an operation is valid in shape but
// forbidden by a product rule (e.g. deleting a completed goal). No-op.
var ErrPreconditionFailed = errors.New("precondition failed")

// PersistenceWarning reports that the backing store failed to save after an
// otherwise-successful mutation. The in-memory state change is NOT rolled
// back; the caller is informed so it can retry the save.
type PersistenceWarning struct {
	Key string // blob key whose save failed
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("state mutated but save of %q failed: %v", w.Key, w.Err)
}

func (w *PersistenceWarning) Unwrap() error {
	return w.Err
}

// IsPersistenceWarning reports whether err carries a PersistenceWarning.
// When it does, the operation's result is still valid and in effect.
func IsPersistenceWarning(err error) bool {
	var pw *PersistenceWarning
	return errors.As(err, &pw)
}
