package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pterobot/pterobot/internal/bot"
	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/domain/repo/settings"
	"github.com/pterobot/pterobot/internal/factory"
	"github.com/pterobot/pterobot/internal/log"
	"github.com/pterobot/pterobot/internal/notify"
	"github.com/pterobot/pterobot/internal/processing"
	"github.com/pterobot/pterobot/internal/resolver"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Answer slash commands and notify server status changes",
	PreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.Logger()

		// Set max procs and max memory based on cgroup limits
		err := common.TuneRuntime()
		if err != nil {
			logger.Error(err, "failed to tune go runtime")

			return
		}

		// Listen to sigterm and interrupt signals
		ctx := common.ShutdownContext(context.Background())

		err = run(ctx, conf)
		if err != nil {
			logger.Error(err, "Bot stopped unexpectedly")

			return
		}

		logger.V(2).Info("Bot stopped")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func newCycle(sequence uint64, at time.Time) entity.Cycle {
	return entity.Cycle{
		Sequence:  sequence,
		StartedAt: at,
	}
}

func run(ctx context.Context, conf *config.Config) error {
	logger := log.Logger()
	clock := clockwork.NewRealClock()

	registry, err := factory.CreateRegistry()
	if err != nil {
		return err
	}

	// Config store
	store, closeStore, err := factory.CreateDocumentStore(ctx, conf.Store)
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}

	var closers []common.CloseFunc
	closers = append(closers, closeStore)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
		defer cancel()

		err := common.CloseAll(shutdownCtx, closers...)
		if err != nil {
			logger.Error(err, "failed to release resources")
		}
	}()

	settingsRepo, err := settings.NewRepo(store, registry)
	if err != nil {
		return fmt.Errorf("failed to create settings repo: %w", err)
	}

	settingsRepo = settingsRepo.WithLogger(logger.WithName("settings"))

	// Panel
	panelClient := factory.CreatePanelClient(conf.Panel)
	if !panelClient.Configured() {
		logger.Info("Panel host or api key missing, every panel call will fail")
	}

	// Discord
	session, err := factory.CreateDiscordSession(conf.Discord)
	if err != nil {
		return err
	}

	// Notifier
	sinks, closeSinks, err := factory.CreateEventSinks(conf.Events)
	if err != nil {
		return fmt.Errorf("failed to create event sinks: %w", err)
	}

	closers = append(closers, closeSinks)

	sender := notify.NewDiscordSender(session).WithLogger(logger.WithName("notify"))

	notifier, err := factory.DecorateNotifier(sender, sinks, registry, conf.Monitor.Retry)
	if err != nil {
		return err
	}

	// Monitor
	monitor := processing.NewMonitor(panelClient, settingsRepo, settingsRepo, notifier, clock).
		WithLogger(logger.WithName("monitor")).
		WithConcurrency(conf.Monitor.Concurrency)

	cycle, err := factory.DecorateMonitor(monitor, registry, clock, conf.Monitor)
	if err != nil {
		return err
	}

	errorProcessing, err := factory.DecorateErrorProcessing(processing.NewMainError(logger.WithName("error")), registry, clock)
	if err != nil {
		return err
	}

	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pterobot",
		Subsystem: "monitor",
		Name:      "skipped_tick_total",
		Help:      "Ticks dropped because the previous cycle was still running.",
	})

	err = registry.Register(skipped)
	if err != nil {
		return fmt.Errorf("failed to register metric: %w", err)
	}

	runner := pipeline.NewRunner(clock, conf.Monitor.Period, newCycle, cycle, errorProcessing).
		WithLogger(logger.WithName("runner")).
		WithHandler(func(h pipeline.Handler[entity.Cycle]) pipeline.Handler[entity.Cycle] {
			return h.WithSkippedCounter(skipped)
		})

	// Command shell
	auth := bot.NewAuthorizer(settingsRepo, conf.Auth).WithLogger(logger.WithName("auth"))
	shell := bot.New(session, panelClient, resolver.New(panelClient), settingsRepo, auth, clock).
		WithLogger(logger.WithName("bot"))

	removeHandler := shell.Register(ctx, session)
	defer removeHandler()

	closeGateway, err := factory.OpenDiscordGateway(session)
	if err != nil {
		return err
	}

	closers = append(closers, closeGateway)

	// Metrics
	server := factory.CreatePrometheusServer(conf.Metrics, registry)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting metrics server", "addr", server.Addr)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server failed: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		err := runner.Start(gctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("monitor failed: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
