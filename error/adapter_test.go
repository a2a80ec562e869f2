package error_test

import (
	"errors"
	"io"
	"strconv"
	"testing"

	apiError "github.com/next-trace/scg-status/error"
	"github.com/next-trace/scg-status/status"
)

// counter returns a status producer that records how often it ran.
func counter(code status.Code) (func() status.Code, *int) {
	calls := 0
	return func() status.Code {
		calls++
		return code
	}, &calls
}

// asError extracts the *Error from err or fails the test.
func asError(t *testing.T, err error) *apiError.Error {
	t.Helper()

	var e *apiError.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error in chain, got %T (%v)", err, err)
	}

	return e
}

func TestResult_Success(t *testing.T) {
	t.Parallel()

	v, err := apiError.Ok(42).Status(status.NotFound)
	if err != nil || v != 42 {
		t.Fatalf("Ok(42).Status => (%v, %v); want (42, nil)", v, err)
	}

	n, err := apiError.Try(strconv.Atoi("17")).Status(status.BadRequest)
	if err != nil || n != 17 {
		t.Fatalf("Try(Atoi(17)).Status => (%v, %v); want (17, nil)", n, err)
	}
}

func TestResult_FailureKeepsStatusAndCause(t *testing.T) {
	t.Parallel()

	_, err := apiError.Err[string](io.ErrUnexpectedEOF).Status(404)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("errors.Is(err, io.ErrUnexpectedEOF) = false; err=%v", err)
	}

	e := asError(t, err)
	if e.Status() != status.From(404) {
		t.Fatalf("Status=%d want=404", e.Status())
	}

	if e.TypeName() != "*errors.errorString" {
		t.Fatalf("TypeName=%q", e.TypeName())
	}
}

func TestResult_PreservesTypedCause(t *testing.T) {
	t.Parallel()

	_, err := apiError.Try(strconv.Atoi("nope")).Status(status.UnprocessableEntity)

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) || numErr.Num != "nope" {
		t.Fatalf("errors.As(*strconv.NumError) failed: %v", err)
	}

	if got := apiError.StatusOf(err); got != status.UnprocessableEntity {
		t.Fatalf("StatusOf=%d want=422", got)
	}

	if got := asError(t, err).TypeName(); got != "*strconv.NumError" {
		t.Fatalf("TypeName=%q", got)
	}
}

func TestResult_UnknownCodeKept(t *testing.T) {
	t.Parallel()

	_, err := apiError.Err[struct{}](errors.New("oh no!")).Status(600)

	e := asError(t, err)
	if e.Status() != status.Code(600) || !e.Status().IsUnknown() {
		t.Fatalf("Status=%d; want unknown 600", e.Status())
	}
}

func TestResult_NilErrorIsSuccess(t *testing.T) {
	t.Parallel()

	r := apiError.Err[int](nil)
	if !r.IsOk() {
		t.Fatalf("Err(nil).IsOk() = false")
	}

	if v, err := r.Status(status.InternalServerError); err != nil || v != 0 {
		t.Fatalf("Err(nil).Status => (%v, %v); want (0, nil)", v, err)
	}
}

func TestResult_WithStatusIsLazy(t *testing.T) {
	t.Parallel()

	fn, calls := counter(status.NotFound)

	v, err := apiError.Ok("value").WithStatus(fn)
	if err != nil || v != "value" {
		t.Fatalf("Ok.WithStatus => (%q, %v)", v, err)
	}

	if *calls != 0 {
		t.Fatalf("status producer ran %d times on success; want 0", *calls)
	}

	fn, calls = counter(status.BadGateway)

	_, err = apiError.Err[int](io.EOF).WithStatus(fn)
	if !errors.Is(err, io.EOF) || apiError.StatusOf(err) != status.BadGateway {
		t.Fatalf("Err.WithStatus => %v (status %d)", err, apiError.StatusOf(err))
	}

	if *calls != 1 {
		t.Fatalf("status producer ran %d times on failure; want 1", *calls)
	}
}

func TestOptional_Present(t *testing.T) {
	t.Parallel()

	v, err := apiError.Some(struct{}{}).Status(200)
	if err != nil || v != (struct{}{}) {
		t.Fatalf("Some.Status => (%v, %v)", v, err)
	}
}

func TestOptional_AbsenceYieldsNoneError(t *testing.T) {
	t.Parallel()

	_, err := apiError.None[struct{}]().Status(404)
	if !errors.Is(err, apiError.ErrNone) {
		t.Fatalf("errors.Is(err, ErrNone) = false; err=%v", err)
	}

	e := asError(t, err)
	if e.Status() != status.NotFound {
		t.Fatalf("Status=%d want=404", e.Status())
	}

	if got := e.Unwrap().Error(); got != "NoneError" {
		t.Fatalf("cause=%q want=\"NoneError\"", got)
	}

	if e.TypeName() != "" {
		t.Fatalf("TypeName=%q want empty", e.TypeName())
	}
}

func TestOptional_Lookup(t *testing.T) {
	t.Parallel()

	ports := map[string]int{"http": 80}

	p, ok := ports["http"]
	if got, err := apiError.Lookup(p, ok).Status(status.BadRequest); err != nil || got != 80 {
		t.Fatalf("Lookup(http) => (%d, %v)", got, err)
	}

	p, ok = ports["gopher"]
	if apiError.Lookup(p, ok).IsSome() {
		t.Fatalf("Lookup(gopher).IsSome() = true")
	}

	_, err := apiError.Lookup(p, ok).Status(status.BadRequest)
	if apiError.StatusOf(err) != status.BadRequest {
		t.Fatalf("StatusOf=%d want=400", apiError.StatusOf(err))
	}
}

func TestOptional_WithStatusIsLazy(t *testing.T) {
	t.Parallel()

	fn, calls := counter(status.NotFound)

	if v, err := apiError.Some(7).WithStatus(fn); err != nil || v != 7 {
		t.Fatalf("Some.WithStatus => (%d, %v)", v, err)
	}

	if *calls != 0 {
		t.Fatalf("status producer ran %d times when present; want 0", *calls)
	}

	fn, calls = counter(status.Gone)

	_, err := apiError.None[int]().WithStatus(fn)
	if !errors.Is(err, apiError.ErrNone) || apiError.StatusOf(err) != status.Gone {
		t.Fatalf("None.WithStatus => %v (status %d)", err, apiError.StatusOf(err))
	}

	if *calls != 1 {
		t.Fatalf("status producer ran %d times when absent; want 1", *calls)
	}
}

func TestWithStatus_NilProducer(t *testing.T) {
	t.Parallel()

	shapes := map[string]apiError.Fallible[int]{
		"result":   apiError.Err[int](errors.New("failed")),
		"optional": apiError.None[int](),
	}

	for name, f := range shapes {
		_, err := apiError.WithStatus(f, nil)
		if got := apiError.StatusOf(err); got != status.InternalServerError {
			t.Fatalf("%s: StatusOf=%d want=500", name, got)
		}
	}

	if _, err := apiError.None[int]().WithStatus(nil); apiError.StatusOf(err) != status.InternalServerError {
		t.Fatalf("None.WithStatus(nil) status=%d want=500", apiError.StatusOf(err))
	}

	if v, err := apiError.Ok(3).WithStatus(nil); err != nil || v != 3 {
		t.Fatalf("Ok.WithStatus(nil) => (%d, %v)", v, err)
	}
}

func TestFallible_PackageFunctions(t *testing.T) {
	t.Parallel()

	shapes := []apiError.Fallible[int]{
		apiError.Err[int](errors.New("failed")),
		apiError.None[int](),
	}

	for _, f := range shapes {
		fn, calls := counter(status.Code(599))

		if _, err := apiError.Status(f, status.Conflict); apiError.StatusOf(err) != status.Conflict {
			t.Fatalf("Status(%T) status=%d want=409", f, apiError.StatusOf(err))
		}

		if _, err := apiError.WithStatus(f, fn); apiError.StatusOf(err) != status.Code(599) {
			t.Fatalf("WithStatus(%T) status=%d want=599", f, apiError.StatusOf(err))
		}

		if *calls != 1 {
			t.Fatalf("WithStatus(%T) ran producer %d times; want 1", f, *calls)
		}
	}

	if v, err := apiError.Status[int](apiError.Some(3), status.Conflict); err != nil || v != 3 {
		t.Fatalf("Status(Some(3)) => (%d, %v)", v, err)
	}
}

// embedded wraps a Result; it gains Fallible only through the promoted method.
type embedded struct {
	apiError.Result[int]
}

func TestFallible_EmbeddingKeepsEmbeddedBehavior(t *testing.T) {
	t.Parallel()

	v, err := apiError.Status[int](embedded{apiError.Ok(5)}, status.NotFound)
	if err != nil || v != 5 {
		t.Fatalf("embedded Ok => (%d, %v); want (5, nil)", v, err)
	}

	cause := errors.New("failed")
	_, err = apiError.Status[int](embedded{apiError.Err[int](cause)}, status.NotFound)
	if !errors.Is(err, cause) || apiError.StatusOf(err) != status.NotFound {
		t.Fatalf("embedded Err => %v (status %d)", err, apiError.StatusOf(err))
	}
}

func TestAdapter_ErrorIsUntypedNilOnSuccess(t *testing.T) {
	t.Parallel()

	_, err := apiError.Ok(1).Status(status.NotFound)
	if err != nil {
		t.Fatalf("err must be an untyped nil, got %#v", err)
	}

	_, err = apiError.Some(1).Status(status.NotFound)
	if err != nil {
		t.Fatalf("err must be an untyped nil, got %#v", err)
	}
}
