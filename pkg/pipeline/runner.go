package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/jonboulle/clockwork"
)

var ErrInvalidPeriod = errors.New("period must be positive")

// PayloadFunc builds the payload of the n-th run, fired at the given time.
type PayloadFunc[Payload any] func(sequence uint64, at time.Time) Payload

// Runner fires a processing once at start, then once per period.
// A tick arriving while the previous run is still going is dropped.
type Runner[Payload any] struct {
	clock   clockwork.Clock
	period  time.Duration
	payload PayloadFunc[Payload]

	handler Handler[Payload]

	logger *logr.Logger
}

func NewRunner[Payload any](clock clockwork.Clock, period time.Duration, payload PayloadFunc[Payload], processing Processing[Payload], errorProcessing ErrorProcessing) Runner[Payload] {
	handler := NewHandler(NewSingleFlightProcessing(processing), errorProcessing)

	return Runner[Payload]{
		clock:   clock,
		period:  period,
		payload: payload,
		handler: handler,
	}
}

func (r Runner[Payload]) WithLogger(logger logr.Logger) Runner[Payload] {
	r.logger = &logger
	r.handler = r.handler.WithLogger(logger)

	return r
}

func (r Runner[Payload]) WithHandler(f func(Handler[Payload]) Handler[Payload]) Runner[Payload] {
	r.handler = f(r.handler)

	return r
}

// Start blocks until ctx is cancelled, then waits for the run in flight.
func (r Runner[Payload]) Start(ctx context.Context) error {
	if r.period <= 0 {
		return ErrInvalidPeriod
	}

	ticker := r.clock.NewTicker(r.period)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	var sequence uint64

	fire := func(at time.Time) {
		sequence++
		payload := r.payload(sequence, at)

		wg.Add(1)

		go func() {
			defer wg.Done()

			r.handler.Handle(ctx, payload)
		}()
	}

	r.logInfo(0, "Starting runner", "period", r.period.String())

	fire(r.clock.Now())

	for {
		select {
		case <-ctx.Done():
			r.logInfo(0, "Context expired")

			return ctx.Err()
		case at := <-ticker.Chan():
			fire(at)
		}
	}
}

func (r Runner[Payload]) logInfo(level int, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.V(level).Info(msg, keysAndValues...)
}
