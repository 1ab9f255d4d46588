package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("use case not found")
	ErrEmptyUpdate = errors.New("no update data provided")
	ErrInternal    = errors.New("internal error")
)

// ValidationError reports the first violated validation rule.
// The message is safe to surface to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// StorageError wraps an underlying persistence failure. The cause is kept for
// logging; callers outside the service layer never see it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
