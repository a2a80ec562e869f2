package error

import (
	"errors"

	"github.com/next-trace/scg-status/status"
)

// ErrNone is the cause attached when an absent Optional is given a status.
var ErrNone = errors.New("NoneError")

// Fallible is a value that may have failed. It is implemented only by Result
// and Optional; the unexported method keeps other types out.
//
// Go cannot close an interface against embedding: a struct that embeds a
// Result or an Optional satisfies Fallible through the promoted method. Such a
// type still behaves exactly like the value it embeds, since unpack cannot be
// overridden outside this package.
type Fallible[T any] interface {
	// unpack returns the value on success, or the zero value and a
	// builder for the failure otherwise.
	unpack() (T, func(status.Code) *Error)
}

// Status converts f into Go's (value, error) pair, tagging any failure with code.
func Status[T any](f Fallible[T], code status.Code) (T, error) {
	v, fail := f.unpack()
	if fail == nil {
		return v, nil
	}

	return v, fail(code)
}

// WithStatus is Status with a status computed by fn. fn runs only on failure.
// A nil fn yields status 500.
func WithStatus[T any](f Fallible[T], fn func() status.Code) (T, error) {
	v, fail := f.unpack()
	if fail == nil {
		return v, nil
	}

	if fn == nil {
		return v, fail(defaultStatus)
	}

	return v, fail(fn())
}

// ------ Result

// Result is either a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

var _ Fallible[struct{}] = Result[struct{}]{}

// Try builds a Result from a Go (value, error) pair, so calls compose directly:
//
//	n, err := apiError.Try(strconv.Atoi(s)).Status(status.BadRequest)
//
// A nil err means success.
func Try[T any](v T, err error) Result[T] { return Result[T]{value: v, err: err} }

// Ok builds a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err builds a failed Result. A nil err yields a successful Result with the zero value.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Status returns the value on success; otherwise an *Error with code whose
// cause is the original error.
func (r Result[T]) Status(code status.Code) (T, error) { return Status[T](r, code) }

// WithStatus is Status with a lazily computed code. fn runs only on failure.
func (r Result[T]) WithStatus(fn func() status.Code) (T, error) { return WithStatus[T](r, fn) }

func (r Result[T]) unpack() (T, func(status.Code) *Error) {
	if r.err == nil {
		return r.value, nil
	}

	var zero T
	return zero, func(code status.Code) *Error { return New(code, r.err) }
}

// ------ Optional

// Optional is either a value or nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

var _ Fallible[struct{}] = Optional[struct{}]{}

// Some builds a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None builds an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Lookup builds an Optional from the comma-ok idiom (map reads, type assertions, ...).
func Lookup[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether o holds a value.
func (o Optional[T]) IsSome() bool { return o.ok }

// Status returns the value when present; otherwise an *Error with code whose
// cause is ErrNone.
func (o Optional[T]) Status(code status.Code) (T, error) { return Status[T](o, code) }

// WithStatus is Status with a lazily computed code. fn runs only when o is absent.
func (o Optional[T]) WithStatus(fn func() status.Code) (T, error) { return WithStatus[T](o, fn) }

func (o Optional[T]) unpack() (T, func(status.Code) *Error) {
	if o.ok {
		return o.value, nil
	}

	var zero T
	return zero, func(code status.Code) *Error { return &Error{status: code, cause: ErrNone} }
}
