package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the library
var (
	// ErrInvalidInput indicates an argument failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a requested element or key was not found
	ErrNotFound = errors.New("not found")
	// ErrTypeMismatch indicates a value had an unexpected dynamic type
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNetworkFailure indicates network connectivity issues
	ErrNetworkFailure = errors.New("network failure")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError reports that a requested element, key, or resource is absent
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' not found", e.What)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(what string) *NotFoundError {
	return &NotFoundError{What: what}
}

// TypeMismatchError reports a heterogeneous map lookup whose value had an
// unexpected dynamic type
type TypeMismatchError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for key '%s': expected %s, got %s", e.Key, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// NewTypeMismatchError creates a new type mismatch error
func NewTypeMismatchError(key, expected, actual string) *TypeMismatchError {
	return &TypeMismatchError{
		Key:      key,
		Expected: expected,
		Actual:   actual,
	}
}

// NetworkError represents network-related errors
type NetworkError struct {
	Address string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for address '%s': %s", e.Address, e.Reason)
}

func (e *NetworkError) Unwrap() error {
	if e.Wrapped != nil {
		return e.Wrapped
	}
	return ErrNetworkFailure
}

// NewNetworkError creates a new network error
func NewNetworkError(address, reason string, wrapped error) *NetworkError {
	return &NetworkError{
		Address: address,
		Reason:  reason,
		Wrapped: wrapped,
	}
}
