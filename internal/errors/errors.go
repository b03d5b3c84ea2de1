// Package errors provides the error taxonomy for the planet client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes
var (
	ErrValidation = errors.New("validation failed")
	ErrTransport  = errors.New("transport failure")
	ErrServer     = errors.New("server error")
)

// ValidationError represents a client-side input rejection that blocks the network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// TransportError represents a request that never produced an HTTP response
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("request to %s failed", e.Endpoint)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *TransportError) Is(target error) bool {
	if target == ErrTransport {
		return true
	}
	_, ok := target.(*TransportError)
	return ok
}

// NewTransportError creates a new TransportError
func NewTransportError(endpoint string, err error) *TransportError {
	return &TransportError{Endpoint: endpoint, Err: err}
}

// ServerError represents a non-2xx response from the backend
type ServerError struct {
	StatusCode int
	Endpoint   string
	// Message is the server-provided "error" field, empty when the body had none
	Message string
	Body    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error [%d] at %s", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("server error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ServerError) Is(target error) bool {
	if target == ErrServer {
		return true
	}
	_, ok := target.(*ServerError)
	return ok
}

// NewServerError creates a new ServerError
func NewServerError(statusCode int, endpoint, message, body string) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// IsValidationError reports whether err is a client-side validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsTransportError reports whether err is a network-level failure
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsServerError reports whether err is a non-2xx backend response
func IsServerError(err error) bool {
	return errors.Is(err, ErrServer)
}

// GetHTTPStatus extracts the HTTP status code from err, or 0 if there is none
func GetHTTPStatus(err error) int {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode
	}
	return 0
}

// GetServerMessage extracts the server-provided error message from err
func GetServerMessage(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	return ""
}

// GetEndpoint extracts the endpoint a request failed against
func GetEndpoint(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Endpoint
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Endpoint
	}
	return ""
}
