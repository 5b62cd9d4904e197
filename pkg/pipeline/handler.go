package pipeline

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler runs a processing and routes its failures to an error processing.
type Handler[Payload any] struct {
	logger *logr.Logger

	processing      Processing[Payload]
	errorProcessing ErrorProcessing

	skipped prometheus.Counter
}

func NewHandler[Payload any](processing Processing[Payload], errProcessing ErrorProcessing) Handler[Payload] {
	return Handler[Payload]{
		processing:      processing,
		errorProcessing: errProcessing,
	}
}

func (h Handler[Payload]) WithLogger(logger logr.Logger) Handler[Payload] {
	h.logger = &logger

	return h
}

// WithSkippedCounter counts payloads dropped because a previous one was still in flight.
func (h Handler[Payload]) WithSkippedCounter(counter prometheus.Counter) Handler[Payload] {
	h.skipped = counter

	return h
}

// Handle returns false when the payload was not processed successfully.
func (h Handler[Payload]) Handle(ctx context.Context, payload Payload) bool {
	err := h.processing.Process(ctx, payload)
	if err == nil {
		return true
	}

	if errors.Is(err, ErrInFlight) {
		h.logInfo(0, "Previous run still in flight, skipping")

		if h.skipped != nil {
			h.skipped.Inc()
		}

		return false
	}

	h.processError(ctx, err)

	return false
}

func (h Handler[Payload]) processError(ctx context.Context, pipelineError error) {
	// A cancelled context means we are shutting down, the next start will run again
	err := ctx.Err()
	if err != nil {
		h.logInfo(1, "Not processing error, context has been cancelled")

		return
	}

	h.logError(pipelineError, "Processing failed")

	if h.errorProcessing == nil {
		return
	}

	processingError := AsProcessingError(pipelineError)

	err = h.errorProcessing.Process(ctx, processingError)
	if err != nil {
		h.logError(err, "Error pipeline failed")

		h.dumpErrorContext(processingError)
	}
}

func (h Handler[Payload]) dumpErrorContext(err ErrProcessingError) {
	h.logError(err,
		"Failed to process payload",
		"additionalInputs", err.AdditionalInputs,
		"category", err.Category,
	)
}

func (h Handler[Payload]) logInfo(level int, msg string, keysAndValues ...any) {
	if h.logger == nil {
		return
	}

	h.logger.V(level).Info(msg, keysAndValues...)
}

func (h Handler[Payload]) logError(err error, msg string, keysAndValues ...any) {
	if h.logger == nil {
		return
	}

	h.logger.Error(err, msg, keysAndValues...)
}
