// Package service provides application-level services for managing activity signups.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrActivityNotFound indicates the named activity does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp indicates the student is already a participant.
	// API layer should map this to HTTP 400 Bad Request.
	ErrAlreadySignedUp = errors.New("student is already signed up")

	// ErrNotRegistered indicates the student is not a participant.
	// API layer should map this to HTTP 400 Bad Request.
	ErrNotRegistered = errors.New("student is not registered for this activity")

	// ErrInvalidEmail indicates the participant email is empty.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidEmail = errors.New("participant email is required")
)

// ActivityServiceError wraps errors from the activity service with context.
type ActivityServiceError struct {
	// Operation is the operation that failed (e.g., "signup", "unregister")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ActivityServiceError.
func (e *ActivityServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("activity service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("activity service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ActivityServiceError) Unwrap() error {
	return e.Err
}

// NewActivityServiceError creates a new ActivityServiceError.
// It returns known sentinel errors directly without wrapping.
func NewActivityServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrActivityNotFound), store.IsNotFoundError(err):
		return ErrActivityNotFound
	case errors.Is(err, ErrAlreadySignedUp), errors.Is(err, domain.ErrAlreadySignedUp):
		return ErrAlreadySignedUp
	case errors.Is(err, ErrNotRegistered), errors.Is(err, domain.ErrNotRegistered):
		return ErrNotRegistered
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, domain.ErrEmptyEmail):
		return ErrInvalidEmail
	}

	return &ActivityServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
