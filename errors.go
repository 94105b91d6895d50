package client

import (
	"errors"

	apierrors "github.com/pollwise/pollwise-client/internal/errors"
)

// Re-export the taxonomy so callers compare against symbols in this package.
var (
	ErrDuplicateUsername = apierrors.ErrDuplicateUsername
	ErrUnauthorized      = apierrors.ErrUnauthorized
	ErrNotFound          = apierrors.ErrNotFound
)

type (
	// StatusError is returned for any non-2xx response; it carries the
	// numeric status code and the (truncated) response body.
	StatusError = apierrors.StatusError

	// TransportError wraps network failures and undecodable responses.
	TransportError = apierrors.TransportError
)

// IsDuplicateUsername reports whether err signals a taken username.
func IsDuplicateUsername(err error) bool { return errors.Is(err, ErrDuplicateUsername) }

// IsUnauthorized reports whether err signals a rejected access token.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsNotFound reports whether err signals a missing poll or option.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsTransport reports whether err originated below the HTTP status layer.
func IsTransport(err error) bool { return apierrors.IsTransport(err) }

// StatusCode extracts the HTTP status code from err, if err carries one.
func StatusCode(err error) (int, bool) { return apierrors.Status(err) }
