package factory

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/log"
	"github.com/pterobot/pterobot/internal/processing"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

/*
 * DecorateMonitor decorates the monitor cycle as follow:
 *
 * panic --> duration --> slow cycle count --> main (list + status + diff + notify)
 */
func DecorateMonitor(mainProcessing pipeline.Processing[entity.Cycle], registry prometheus.Registerer, clock clockwork.Clock, conf config.Monitor) (pipeline.Processing[entity.Cycle], error) {
	metricsConfig := pipeline.MetricsConfig{Namespace: metricsNamespace, Subsystem: "monitor"}

	slow, err := processing.NewCountSlowCycles(mainProcessing, registry, clock, conf.SlowThreshold, metricsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create slow cycle processor: %w", err)
	}

	var ret pipeline.Processing[entity.Cycle] = slow.WithLogger(log.Logger().WithName("monitor"))

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clock, metricsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}

/*
 * DecorateNotifier decorates the notification delivery as follow:
 *
 *                    ---> count --> retry --> discord
 *  panic --> fanout |
 *                    ---> retry --> event sink (nats, kafka, ...)
 */
func DecorateNotifier(discord pipeline.Processing[entity.Notification], sinks []pipeline.Processing[entity.Notification], registry prometheus.Registerer, conf config.Retry) (pipeline.Processing[entity.Notification], error) {
	retryConfig := pipeline.RetryConfig{
		MaxAttempt: conf.MaxAttempt,
		Delay:      conf.Delay,
		MaxDelay:   conf.MaxDelay,
	}

	logger := log.Logger().WithName("notify")

	ret := pipeline.NewRetryProcessingWithLogger(discord, retryConfig, logger)

	ret, err := processing.NewCountNotifications(ret, registry, pipeline.MetricsConfig{Namespace: metricsNamespace, Subsystem: "notify"})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification count processor: %w", err)
	}

	if len(sinks) > 0 {
		branches := []pipeline.Processing[entity.Notification]{ret}

		for _, sink := range sinks {
			branches = append(branches, pipeline.NewRetryProcessingWithLogger(sink, retryConfig, logger))
		}

		ret = pipeline.NewFanOutProcessing(branches...)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}

/*
 * DecorateErrorProcessing decorates the error processing as follow:
 *
 *                                     ---> main (log)
 *  panic --> duration --> parallel --|
 *                                     ---> error count
 */
func DecorateErrorProcessing(mainProcessing pipeline.ErrorProcessing, registry prometheus.Registerer, clock clockwork.Clock) (pipeline.ErrorProcessing, error) {
	metricsConfig := pipeline.MetricsConfig{Namespace: metricsNamespace, Subsystem: "error"}

	errorCount, err := pipeline.NewErrorCountProcessing(registry, metricsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create error count processing: %w", err)
	}

	ret := pipeline.NewParallelProcessing(mainProcessing, errorCount)

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clock, metricsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}
