// Package error provides an error type that carries an HTTP status code, and
// adapters that attach a status to a failed result or an absent value.
//
// It exposes a single concrete type Error that implements contract.Error and
// integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Status is a status.Code; unregistered codes are kept as given
//   - Optional underlying cause preserved for errors.Is / errors.As
//   - Structured Context map with defensive cloning on read/write
//   - slog.LogValuer so errors log as structured groups
//
// The adapters cover exactly two shapes, Result and Optional:
//
//	user, err := apiError.Try(repo.Find(ctx, id)).Status(status.NotFound)
//
//	p, ok := ports[name]
//	port, err := apiError.Lookup(p, ok).Status(status.BadRequest)
//
// On success the value passes through untouched and the status (or the
// function producing it, for WithStatus) is never evaluated.
package error
