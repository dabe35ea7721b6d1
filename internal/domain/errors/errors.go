// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes.
package errors

import (
	"net/http"

	"nestly/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Message() string // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode int
	message  string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, message string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		message:  message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types.
var (
	// ErrAccountExists reports a signup against an already registered
	// (username, email) pair. The signup handler turns it into a 200 with a
	// message body, keeping the historical API contract; the HTTP code here
	// is never used for it.
	ErrAccountExists = NewBaseError(
		http.StatusOK,
		"Username already exists",
	)

	// ErrPasswordTooShort reports a signup password below the minimum
	// length. Like ErrAccountExists it is delivered as a 200 with a message.
	// The message text predates the length check and disagrees with it;
	// both are preserved as-is.
	ErrPasswordTooShort = NewBaseError(
		http.StatusOK,
		"Password must be at least 8 characters",
	)

	// ErrInvalidCredentials covers both an unknown (username, email) pair
	// and a password mismatch; the response does not distinguish them.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"Invalid data",
	)

	// ErrInternalError is the generic catch-all for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"Internal server error",
	)
)

// StoreError represents a document store failure, implementing the AppError
// interface. The underlying error is kept for server-side logging only.
type StoreError struct {
	err     error
	message string
}

// NewStoreError creates a store-related error with the user-facing message.
func NewStoreError(err error, message string) AppError {
	return &StoreError{
		err:     err,
		message: message,
	}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "store operation failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Message returns the user-facing error message.
func (e *StoreError) Message() string {
	return e.message
}
