package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"
)

// Retry Processing
//
// Only errors marked with ErrRetryableError are retried, with an exponential backoff
// starting at Delay and capped at MaxDelay.

type retryProcessing[Payload any] struct {
	processing Processing[Payload]
	config     RetryConfig
	logger     *logr.Logger
}

type RetryConfig struct {
	MaxAttempt uint
	Delay      time.Duration
	MaxDelay   time.Duration
}

func NewRetryProcessing[Payload any](p Processing[Payload], config RetryConfig) Processing[Payload] {
	return retryProcessing[Payload]{
		processing: p,
		config:     config,
	}
}

func NewRetryProcessingWithLogger[Payload any](p Processing[Payload], config RetryConfig, logger logr.Logger) Processing[Payload] {
	return retryProcessing[Payload]{
		processing: p,
		config:     config,
		logger:     &logger,
	}
}

func (p retryProcessing[Payload]) Process(ctx context.Context, payload Payload) error {
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(p.config.MaxAttempt),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrRetryableError)
		}),
		retry.Delay(p.config.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			if p.logger == nil {
				return
			}

			p.logger.V(1).Info("Retrying", "attempt", attempt+1, "error", err.Error())
		}),
	}

	if p.config.MaxDelay > 0 {
		opts = append(opts, retry.MaxDelay(p.config.MaxDelay))
	}

	return retry.Do(
		func() error {
			return p.processing.Process(ctx, payload)
		},
		opts...,
	)
}
