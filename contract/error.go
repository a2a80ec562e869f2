// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must ensure Context returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

import "github.com/next-trace/scg-status/status"

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Report the status they were built with from Status(), unchanged.
//   - Keep HTTPStatus() equal to int(Status()).
//   - Ensure Context() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
type Error interface {
	error
	Status() status.Code
	HTTPStatus() int
	// TypeName is the Go type of the wrapped cause, or "" when the error was
	// built from a message.
	TypeName() string
	// Context returns a defensive copy; NEVER return the internal map directly.
	Context() map[string]any
	Unwrap() error
}
