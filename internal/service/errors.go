package service

import (
	"errors"
	"fmt"
)

// ErrTransactionNotFound is returned when no transaction matches both the id
// and the session. A row owned by another session is reported the same way.
var ErrTransactionNotFound = errors.New("transaction not found")

// ValidationError reports malformed client input. It is always raised before
// any storage call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func wrapStorage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
