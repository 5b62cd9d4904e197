package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/dustin/go-humanize"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/pterobot/pterobot/internal/log"
)

// share of the cgroup memory limit given to the go runtime
const memLimitRatio = 0.9

// ShutdownContext is cancelled on the first SIGINT or SIGTERM.
// A second signal exits the process without waiting for the graceful shutdown.
func ShutdownContext(parent context.Context) context.Context {
	ret, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger := log.Logger()

		sig := <-signals
		logger.V(1).Info("Signal received, shutting down", "signal", sig.String())
		cancel()

		sig = <-signals
		logger.Info("Second signal received, exiting now", "signal", sig.String())
		os.Exit(1)
	}()

	return ret
}

// TuneRuntime aligns GOMAXPROCS and GOMEMLIMIT on the container limits, when there are some.
func TuneRuntime() error {
	logger := log.Logger()

	// maxprocs logs printf style whereas logr expects a message followed by key values
	_, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.V(1).Info(fmt.Sprintf(format, args...))
	}))
	if err != nil {
		return fmt.Errorf("failed to set max procs: %w", err)
	}

	limit, err := memlimit.SetGoMemLimitWithOpts(memlimit.WithRatio(memLimitRatio))
	if err != nil {
		return fmt.Errorf("failed to set go mem limit: %w", err)
	}

	logger.V(1).Info("Go runtime tuned", "memLimitRatio", memLimitRatio, "memLimit", humanize.IBytes(uint64(limit)))

	return nil
}
