package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/store"
)

// Common sentinel errors for ItemService
var (
	// ErrItemNotFound indicates that the item does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrItemNotFound = errors.New("item not found")
)

// ItemServiceError wraps errors from the item service with context.
type ItemServiceError struct {
	// Operation is the operation that failed (e.g., "create_item", "update_item")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ItemServiceError.
func (e *ItemServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("item service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("item service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ItemServiceError) Unwrap() error {
	return e.Err
}

// NewItemServiceError creates a new ItemServiceError.
// Not-found and validation errors are returned as sentinels without wrapping.
func NewItemServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrItemNotFound) || errors.Is(err, store.ErrItemNotFound) {
		return ErrItemNotFound
	}

	if errors.Is(err, domain.ErrValidation) {
		return err
	}

	return &ItemServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
