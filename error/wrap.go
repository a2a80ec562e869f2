package error

import (
	"errors"

	"github.com/next-trace/scg-status/status"
)

// Wrap attaches a status to cause. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, code status.Code) *Error {
	return New(code, cause)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is, or wraps, an *Error => that *Error (same pointer)
//   - otherwise wrap it with status 500
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return Wrap(err, defaultStatus)
}

// StatusOf extracts the status code from an error chain.
//
// Behavior:
//   - nil input => 200
//   - chain contains an *Error => its status
//   - otherwise => 500
func StatusOf(err error) status.Code {
	if err == nil {
		return status.OK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.status
	}

	return defaultStatus
}
