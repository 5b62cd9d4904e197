package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsConfig struct {
	Namespace string
	Subsystem string
	Buckets   []float64
}

// Duration Metric Processing

type durationDecorator[Payload any] struct {
	processing Processing[Payload]
	histogram  *prometheus.HistogramVec
	clock      clockwork.Clock
}

func NewDurationMetricsDecoratorProcessing[Payload any](p Processing[Payload], registry prometheus.Registerer, clock clockwork.Clock, config MetricsConfig) (Processing[Payload], error) {
	ret := durationDecorator[Payload]{
		processing: p,
		clock:      clock,
	}

	buckets := config.Buckets
	if len(buckets) == 0 {
		buckets = []float64{50, 100, 250, 500, 1000, 2500, 5000, 15000, 60000}
	}

	opts := prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Subsystem: config.Subsystem,
		Name:      "processing_duration_milliseconds",
		Help:      "Time taken to process payload.",
		Buckets:   buckets,
	}

	histogram := prometheus.NewHistogramVec(opts, []string{"failed"})

	err := registry.Register(histogram)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	ret.histogram = histogram

	return ret, nil
}

func (p durationDecorator[Payload]) Process(ctx context.Context, payload Payload) error {
	start := p.clock.Now()

	err := p.processing.Process(ctx, payload)

	duration := p.clock.Since(start)
	durationMilli := float64(duration/time.Millisecond) + float64(duration%time.Millisecond)/float64(time.Millisecond)

	p.histogram.WithLabelValues(fmt.Sprintf("%v", err != nil)).Observe(durationMilli)

	return err
}

// Error Metric Processing

type errorCountProcessing struct {
	counter *prometheus.CounterVec
}

func NewErrorCountProcessing(registry prometheus.Registerer, config MetricsConfig) (ErrorProcessing, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Subsystem: config.Subsystem,
		Name:      "processing_error_total",
		Help:      "Error counter by category.",
	}, []string{"category"})

	err := registry.Register(counter)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	ret := errorCountProcessing{
		counter: counter,
	}

	return ret, nil
}

func (p errorCountProcessing) Process(ctx context.Context, processingError ErrProcessingError) error {
	category := processingError.Category
	if category == "" {
		category = "empty_category"
	}

	p.counter.WithLabelValues(strings.ReplaceAll(category, "-", "_")).Inc()

	return nil
}
