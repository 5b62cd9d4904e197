package processing

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

type CountNotifications struct {
	counter *prometheus.CounterVec
	inner   pipeline.Processing[entity.Notification]
}

func NewCountNotifications(p pipeline.Processing[entity.Notification], registry prometheus.Registerer, config pipeline.MetricsConfig) (pipeline.Processing[entity.Notification], error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Subsystem: config.Subsystem,
		Name:      "notification_total",
		Help:      "Notification counter by new status.",
	}, []string{"status", "failed"})

	err := registry.Register(counter)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	ret := CountNotifications{
		counter: counter,
		inner:   p,
	}

	return ret, nil
}

func (p CountNotifications) Process(ctx context.Context, notification entity.Notification) error {
	err := p.inner.Process(ctx, notification)

	p.counter.WithLabelValues(string(notification.Change.Current), fmt.Sprintf("%v", err != nil)).Inc()

	return err
}
