package errors

import stderrors "errors"

// NewStatus builds an unclassified StatusError for op.
func NewStatus(op string, statusCode int, body string) *StatusError {
	return &StatusError{Op: op, StatusCode: statusCode, Body: body}
}

// NewStatusAs builds a StatusError carrying a taxonomy sentinel, so
// errors.Is(err, sentinel) matches while the code and body remain inspectable.
func NewStatusAs(op string, statusCode int, body string, sentinel error) *StatusError {
	return &StatusError{Op: op, StatusCode: statusCode, Body: body, Mapped: sentinel}
}

// NewTransport wraps a network or decode failure for op.
func NewTransport(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return stderrors.As(err, &te)
}

// Status extracts the HTTP status code from err, if err carries one.
func Status(err error) (int, bool) {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}
