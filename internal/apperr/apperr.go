// Package apperr classifies failures into a small set of kinds that the HTTP
// boundary maps to status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the category of a failure.
// Kinds are string-based so they serialize naturally into JSON error bodies.
type Kind string

const (
	// KindConfiguration indicates missing or invalid service configuration,
	// including unresolvable credentials.
	KindConfiguration Kind = "CONFIGURATION_ERROR"

	// KindBackend indicates the storage backend rejected the call.
	KindBackend Kind = "BACKEND_ERROR"

	// KindInternal indicates any other unexpected failure.
	KindInternal Kind = "INTERNAL_ERROR"

	// KindInvalidInput indicates a malformed client request.
	KindInvalidInput Kind = "INVALID_INPUT"

	// KindTooLarge indicates the request body exceeded the upload limit.
	KindTooLarge Kind = "PAYLOAD_TOO_LARGE"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error carrying a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given kind.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Configuration creates a configuration error with a formatted message.
func Configuration(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Kind: KindConfiguration, Message: err.Error(), Err: errors.Unwrap(err)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
