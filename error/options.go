package error

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-status/status"
)

// Option configures an Error during construction via E().
type Option func(*Error)

// defaultStatus is the status used when constructing errors via E, Ensure and StatusOf.
const defaultStatus = status.InternalServerError

// WithCode sets the status code for the error during E() construction.
func WithCode(code status.Code) Option { return func(e *Error) { e.status = code } }

// WithMessage replaces the cause with a plain error carrying msg.
func WithMessage(msg string) Option {
	return func(e *Error) {
		e.cause = errors.New(msg)
		e.typeName = ""
	}
}

// WithCause sets the underlying cause to be returned by Unwrap() and records its type.
// A nil cause is ignored.
func WithCause(cause error) Option {
	return func(e *Error) {
		if cause == nil {
			return
		}
		e.cause = cause
		e.typeName = fmt.Sprintf("%T", cause)
	}
}

// WithContext sets the initial context map for the error during E() construction.
// The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(e *Error) { e.context = cloneMap(ctx) }
}

// E is a minimal builder when you don’t want to pick New or FromString.
// Defaults: status 500, cause "error".
func E(opts ...Option) *Error {
	e := FromString(defaultStatus, "error")
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}

	return e
}
