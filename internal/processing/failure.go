package processing

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/pterobot/pterobot/pkg/pipeline"
)

// MainError is the end of the error pipeline: it reports the categorized error.
// Metrics are handled by the decorators.
type MainError struct {
	logger logr.Logger
}

func NewMainError(logger logr.Logger) MainError {
	return MainError{
		logger: logger,
	}
}

func (m MainError) Process(ctx context.Context, pErr pipeline.ErrProcessingError) error {
	keysAndValues := []any{"category", pErr.Category}

	for _, input := range pErr.AdditionalInputs {
		keysAndValues = append(keysAndValues, input.Source+"."+input.Key, string(input.Value))
	}

	m.logger.Error(pErr, "Cycle failed, will retry next cycle", keysAndValues...)

	return nil
}
