package error

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/next-trace/scg-status/contract"
	"github.com/next-trace/scg-status/status"
)

// Error is an error tagged with an HTTP status code.
//
// Fields:
//   - status:   the code it was built with; never validated or clamped
//   - cause:    the failure being reported, exposed via Unwrap
//   - typeName: Go type of the cause when built from an error value
//   - context:  structured extras (ids, hints, etc.)
type Error struct {
	status   status.Code
	cause    error
	typeName string
	context  map[string]any
}

// compile-time guarantees
var (
	_ contract.Error = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d %s: %v", e.status, e.status.CanonicalReason(), e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// ------ contract.Error getters

func (e *Error) Status() status.Code     { return e.status }
func (e *Error) HTTPStatus() int         { return e.status.Int() }
func (e *Error) TypeName() string        { return e.typeName }
func (e *Error) Context() map[string]any { return cloneMap(e.context) }

// SetStatus replaces the status code.
func (e *Error) SetStatus(code status.Code) {
	if e != nil {
		e.status = code
	}
}

// ------ core constructors

// New creates an Error carrying code and cause.
// The cause's Go type is recorded and returned by TypeName.
// A nil cause is replaced with an opaque "unknown" error.
func New(code status.Code, cause error) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return &Error{
		status:   code,
		cause:    cause,
		typeName: fmt.Sprintf("%T", cause),
	}
}

// FromString creates an Error carrying code and a cause built from msg.
// TypeName is empty for errors built this way.
func FromString(code status.Code, msg string) *Error {
	return &Error{status: code, cause: errors.New(msg)}
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the error context map and returns the same receiver for chaining.
// The internal context map is created on first use.
func (e *Error) WithContextKV(k string, v any) *Error {
	if e == nil {
		return nil
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	e.context[k] = v

	return e
}

// WithContextMap merges the provided map into the error context and returns the same receiver for chaining.
// Nil or empty maps are ignored. Existing keys are overwritten.
func (e *Error) WithContextMap(m map[string]any) *Error {
	if e == nil || len(m) == 0 {
		return e
	}

	if e.context == nil {
		e.context = make(map[string]any, len(m))
	}

	for k, v := range cloneMap(m) {
		e.context[k] = v
	}

	return e
}

// ------ logging

// LogValue renders the error as a structured group:
// status, reason, type (when known), cause and any context keys.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}

	attrs := make([]slog.Attr, 0, 4+len(e.context))
	attrs = append(attrs,
		slog.Int("status", e.status.Int()),
		slog.String("reason", e.status.CanonicalReason()),
	)

	if e.typeName != "" {
		attrs = append(attrs, slog.String("type", e.typeName))
	}

	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	for k, v := range e.context {
		attrs = append(attrs, slog.Any(k, v))
	}

	return slog.GroupValue(attrs...)
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// nested maps are cloned so callers never share internal state
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
