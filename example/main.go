// Package main demonstrates usage of the scg-status packages.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	apiError "github.com/next-trace/scg-status/error"
	"github.com/next-trace/scg-status/status"
)

type customer struct {
	ID   int
	Name string
}

var customers = map[int]customer{42: {ID: 42, Name: "Ada"}}

func findCustomer(rawID string) (customer, error) {
	id, err := apiError.Try(strconv.Atoi(rawID)).Status(status.BadRequest)
	if err != nil {
		return customer{}, err
	}

	c, ok := customers[id]

	return apiError.Lookup(c, ok).WithStatus(func() status.Code {
		// only evaluated for missing customers
		return status.NotFound
	})
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}))
}

func main() {
	logger := newLogger()

	for _, code := range []status.Code{status.NotModified, status.ImATeapot, status.From(600)} {
		fmt.Printf("%s %q unknown=%v client=%v\n", code, code.CanonicalReason(), code.IsUnknown(), code.IsClientError())
	}

	for _, raw := range []string{"42", "7", "x"} {
		c, err := findCustomer(raw)
		if err != nil {
			logger.Warn("lookup failed", "id", raw, "status", apiError.StatusOf(err), "err", err)
			continue
		}
		logger.Info("lookup ok", "id", c.ID, "name", c.Name)
	}

	// Direct construction with context
	err := apiError.New(status.ServiceUnavailable, errors.New("primary replica down")).
		WithContextKV("region", "eu-west-1")
	fmt.Println(err, err.HTTPStatus(), err.TypeName(), err.Context())
}
