package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

// CountSlowCycles counts cycles lasting longer than threshold.
// Those cycles make the runner drop ticks.
type CountSlowCycles struct {
	counter   prometheus.Counter
	clock     clockwork.Clock
	threshold time.Duration
	inner     pipeline.Processing[entity.Cycle]

	logger *logr.Logger
}

func NewCountSlowCycles(p pipeline.Processing[entity.Cycle], registry prometheus.Registerer, clock clockwork.Clock, threshold time.Duration, config pipeline.MetricsConfig) (CountSlowCycles, error) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Subsystem: config.Subsystem,
		Name:      "slow_cycle_total",
		Help:      "Cycles lasting longer than the slow threshold.",
	})

	err := registry.Register(counter)
	if err != nil {
		return CountSlowCycles{}, fmt.Errorf("failed to register metric: %w", err)
	}

	ret := CountSlowCycles{
		counter:   counter,
		clock:     clock,
		threshold: threshold,
		inner:     p,
	}

	return ret, nil
}

func (p CountSlowCycles) WithLogger(logger logr.Logger) CountSlowCycles {
	p.logger = &logger

	return p
}

func (p CountSlowCycles) Process(ctx context.Context, cycle entity.Cycle) error {
	err := p.inner.Process(ctx, cycle)

	if !p.isSlow(cycle) {
		return err
	}

	p.counter.Inc()

	if p.logger != nil {
		p.logger.V(0).Info("Slow cycle", "cycle", cycle.Sequence, "duration", p.clock.Since(cycle.StartedAt).String(), "threshold", p.threshold.String())
	}

	return err
}

// A zero threshold disables the check.
func (p CountSlowCycles) isSlow(cycle entity.Cycle) bool {
	if p.threshold <= 0 || cycle.StartedAt.IsZero() {
		return false
	}

	return p.clock.Since(cycle.StartedAt) > p.threshold
}
