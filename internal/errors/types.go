// Package errors defines the error taxonomy surfaced by the client SDK.
// Every failure mode maps to a value callers can distinguish with errors.Is
// or errors.As; nothing is retried or recovered locally.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinels for the status codes the service uses to signal specific
// conditions. Status-mapped failures wrap these in a *StatusError so the
// numeric code and response body stay available for diagnostics.
var (
	// ErrDuplicateUsername is returned when registration answers 400.
	ErrDuplicateUsername = stderrors.New("username already registered")

	// ErrUnauthorized is returned when a vote answers 401.
	ErrUnauthorized = stderrors.New("invalid or missing access token")

	// ErrNotFound is returned when the poll or option does not exist (404).
	ErrNotFound = stderrors.New("poll or option not found")
)

// StatusError reports a non-2xx response. Mapped holds the taxonomy sentinel
// when the status code carries one; it is nil for unclassified failures.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
	Mapped     error
}

func (e *StatusError) Error() string {
	if e.Mapped != nil {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Mapped)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Unwrap exposes the sentinel (if any) to errors.Is.
func (e *StatusError) Unwrap() error { return e.Mapped }

// TransportError wraps a network-level failure (connection, DNS, timeout) or
// a response body that could not be decoded. The underlying error is
// propagated unmodified.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: transport: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }
