package repositories

import (
	"errors"
	"fmt"
)

// Common store errors
var (
	// ErrDuplicateEntry is returned when an insert collides with an existing ID.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrStoreUnavailable is returned when the durable store rejects or cannot
	// serve an operation (throttling, permissions, connectivity).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrValidation is returned when a record fails validation ahead of a write.
	ErrValidation = errors.New("validation error")
)

// StoreError wraps a failed store operation with its context. The underlying
// store-reported message is carried for logging and never surfaced to clients.
type StoreError struct {
	Op    string // Operation that failed
	Table string // Store table name
	ID    string // Record ID (if applicable)
	Err   error  // Underlying error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s failed for ID %s: %v", e.Table, e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Table, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error
func NewStoreError(op, table, id string, err error) *StoreError {
	return &StoreError{Op: op, Table: table, ID: id, Err: err}
}

// IsStoreError reports whether the error originated at the store boundary.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// IsDuplicate checks if an error is a "duplicate entry" error
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}
