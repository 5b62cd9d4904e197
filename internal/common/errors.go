package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterobot/pterobot/pkg/pipeline"
)

// CloseFunc releases a resource created by a factory.
type CloseFunc func(ctx context.Context) error

func NewErrProcessingError(err error, category string, inputs []pipeline.Input, reason string, args ...interface{}) pipeline.ErrProcessingError {
	cause := fmt.Sprintf(reason, args...)
	dErr := fmt.Errorf("%s: %w", cause, err)

	return pipeline.NewErrProcessingError(dErr, category, inputs)
}

func NewRetryableErrProcessingError(err error, category string, inputs []pipeline.Input, reason string, args ...interface{}) pipeline.ErrProcessingError {
	return NewErrProcessingError(pipeline.NewErrRetryableError(err), category, inputs, reason, args...)
}

// CloseAll runs every close func, in reverse order, and joins their errors.
func CloseAll(ctx context.Context, closers ...CloseFunc) error {
	var errs []error

	for i := len(closers) - 1; i >= 0; i-- {
		if closers[i] == nil {
			continue
		}

		err := closers[i](ctx)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
