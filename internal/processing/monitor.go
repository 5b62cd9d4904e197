package processing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/domain/repo"
	"github.com/pterobot/pterobot/internal/panel"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

const (
	categoryListServers = "list_servers"

	defaultConcurrency = 4
)

var errNoIdentity = errors.New("server has no uuid nor identifier")

// Monitor runs one polling cycle: list, fetch statuses, diff, persist, notify.
type Monitor struct {
	poller   StatusPoller
	channels repo.ChannelMapReader
	state    repo.MonitorState
	notifier pipeline.Processing[entity.Notification]
	clock    clockwork.Clock

	concurrency int

	logger *logr.Logger
}

func NewMonitor(poller StatusPoller, channels repo.ChannelMapReader, state repo.MonitorState, notifier pipeline.Processing[entity.Notification], clock clockwork.Clock) Monitor {
	return Monitor{
		poller:      poller,
		channels:    channels,
		state:       state,
		notifier:    notifier,
		clock:       clock,
		concurrency: defaultConcurrency,
	}
}

func (m Monitor) WithLogger(logger logr.Logger) Monitor {
	m.logger = &logger

	return m
}

// WithConcurrency bounds the number of status requests in flight.
func (m Monitor) WithConcurrency(concurrency int) Monitor {
	if concurrency > 0 {
		m.concurrency = concurrency
	}

	return m
}

func (m Monitor) Process(ctx context.Context, cycle entity.Cycle) error {
	channels := m.channels.GetChannels(ctx)
	if len(channels) == 0 {
		m.logInfo(1, "No notification channel configured, skipping cycle", "cycle", cycle.Sequence)

		return nil
	}

	docs, err := m.poller.ListServers(ctx, nil)
	if err != nil {
		return pipeline.NewErrProcessingError(
			fmt.Errorf("failed to list servers: %w", err),
			categoryListServers,
			[]pipeline.Input{{Source: "cycle", Key: "sequence", Value: []byte(strconv.FormatUint(cycle.Sequence, 10))}},
		)
	}

	previous := m.state.GetMonitorState(ctx)

	observations, err := m.observe(ctx, docs)
	if err != nil {
		return err
	}

	next, changed, events := Diff(previous, observations, m.clock.Now())

	if changed {
		m.state.SaveMonitorState(ctx, next)
	}

	m.logInfo(1, "Cycle done", "cycle", cycle.Sequence, "servers", len(observations), "changed", changed, "transitions", len(events))

	m.notify(ctx, events, channels)

	return nil
}

// observe fetches statuses concurrently and keeps the list order.
func (m Monitor) observe(ctx context.Context, docs []entity.Document) ([]Observation, error) {
	results := make([]Observation, len(docs))
	valid := make([]bool, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for i, doc := range docs {
		server := panel.Normalize(doc)

		id := server.ID()
		if id == "" {
			m.logError(errNoIdentity, "Skipping server", "name", server.Name)

			continue
		}

		g.Go(func() error {
			result := m.poller.GetStatus(gctx, id)

			results[i] = Observation{Server: server, Status: result.Status}
			valid[i] = true

			m.logInfo(2, "Status fetched", "server", id, "status", result.Status, "source", result.Source)

			return nil
		})
	}

	_ = g.Wait()

	// Statuses fetched after cancellation are unknown, they must not be persisted
	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("cycle interrupted: %w", err)
	}

	ret := make([]Observation, 0, len(docs))
	for i := range results {
		if valid[i] {
			ret = append(ret, results[i])
		}
	}

	return ret, nil
}

// notify sends every event to every channel, sorted by guild. A failed delivery does not stop the others.
func (m Monitor) notify(ctx context.Context, events []entity.ChangeEvent, channels entity.ChannelMap) {
	if len(events) == 0 {
		return
	}

	guilds := make([]string, 0, len(channels))
	for guildID := range channels {
		guilds = append(guilds, guildID)
	}

	sort.Strings(guilds)

	for _, event := range events {
		for _, guildID := range guilds {
			notification := entity.Notification{
				Change:    event,
				GuildID:   guildID,
				ChannelID: channels[guildID],
			}

			err := m.notifier.Process(ctx, notification)
			if err != nil {
				m.logError(err, "Failed to deliver notification", "server", event.Server.ID(), "guild", guildID, "channel", notification.ChannelID)
			}
		}
	}
}

func (m Monitor) logInfo(level int, msg string, keysAndValues ...any) {
	if m.logger == nil {
		return
	}

	m.logger.V(level).Info(msg, keysAndValues...)
}

func (m Monitor) logError(err error, msg string, keysAndValues ...any) {
	if m.logger == nil {
		return
	}

	m.logger.Error(err, msg, keysAndValues...)
}
