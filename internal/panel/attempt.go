package panel

import (
	"context"
)

// attempt is one endpoint of an operation.
type attempt[T any] struct {
	endpoint string
	do       func(ctx context.Context) (T, error)
}

// firstSuccess runs attempts in order and returns the first success with its endpoint.
// Every failure is kept in the returned *AttemptsError.
func firstSuccess[T any](ctx context.Context, c Client, op string, attempts ...attempt[T]) (T, string, error) {
	var zero T

	failures := &AttemptsError{Op: op}

	for _, a := range attempts {
		c.logInfo(2, "Trying panel endpoint", "op", op, "endpoint", a.endpoint)

		ret, err := a.do(ctx)
		if err == nil {
			return ret, a.endpoint, nil
		}

		failure := AttemptError{Endpoint: a.endpoint, Err: err}
		failures.Attempts = append(failures.Attempts, failure)

		c.logInfo(2, "Panel endpoint failed", "op", op, "endpoint", a.endpoint, "status", failure.StatusCode(), "error", err.Error())

		if ctx.Err() != nil {
			break
		}
	}

	return zero, "", failures
}
