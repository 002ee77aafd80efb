// Package errors defines the application error taxonomy. A typed error
// makes "the fetch failed" distinguishable from "the fetch succeeded and
// found nothing", which callers must never infer from an empty result.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType defines different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "VALIDATION"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"
	ErrorTypeInternal    ErrorType = "INTERNAL"
	ErrorTypeConnection  ErrorType = "CONNECTION"
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"
)

// AppError is the custom error type for the application
type AppError struct {
	Type      ErrorType
	Message   string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *AppError) Error() string {
	switch {
	case e.Operation != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Type, e.Operation, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	case e.Operation != "":
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Operation, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work
func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructor functions for different error types

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternal creates an internal error
func NewInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewConnection creates a connectivity error for a failed query or an
// unreachable backing store. Operation names the data-service operation
// that failed.
func NewConnection(operation, message string, err error) error {
	return &AppError{
		Type:      ErrorTypeConnection,
		Message:   message,
		Operation: operation,
		Err:       err,
	}
}

// NewUnavailable creates an error for a dependency that is refusing
// requests, such as a tripped circuit breaker.
func NewUnavailable(message string) error {
	return &AppError{
		Type:    ErrorTypeUnavailable,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, preserve the type
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:      appErr.Type,
			Message:   fmt.Sprintf("%s: %s", message, appErr.Message),
			Operation: appErr.Operation,
			Err:       appErr.Err,
		}
	}

	// Otherwise, create an internal error
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// Type checking functions

func is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool { return is(err, ErrorTypeValidation) }

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return is(err, ErrorTypeNotFound) }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return is(err, ErrorTypeInternal) }

// IsConnection checks if an error is a connectivity error
func IsConnection(err error) bool { return is(err, ErrorTypeConnection) }

// IsUnavailable checks if an error is an unavailability error
func IsUnavailable(err error) bool { return is(err, ErrorTypeUnavailable) }
