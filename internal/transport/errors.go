package transport

import (
	"fmt"
)

// ErrorType classifies transport errors.
type ErrorType string

const (
	// ErrorTypeConnection indicates network or DNS errors
	ErrorTypeConnection ErrorType = "connection"

	// ErrorTypeTimeout indicates request timeout or deadline exceeded
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeInvalidReq indicates request validation error (invalid method, URL, etc.)
	ErrorTypeInvalidReq ErrorType = "invalid_request"

	// ErrorTypeCancelled indicates context was cancelled
	ErrorTypeCancelled ErrorType = "cancelled"
)

// TransportError represents a structured error from transport execution.
// Transport errors mean the request never produced an HTTP response;
// callers treat them as fatal rather than converting them into tool
// results.
type TransportError struct {
	// Type classifies the error
	Type ErrorType

	// Message is a user-facing error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsType returns true if the error is of the given type.
func (e *TransportError) IsType(t ErrorType) bool {
	return e.Type == t
}
