package processing_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/internal/domain/entity"
	repomock "github.com/pterobot/pterobot/internal/domain/repo/mock"
	"github.com/pterobot/pterobot/internal/processing"
	"github.com/pterobot/pterobot/internal/processing/mock"
	"github.com/pterobot/pterobot/pkg/pipeline"
	pipelinemock "github.com/pterobot/pterobot/pkg/pipeline/mock"
)

// Helper

// memoryState is an in-memory repo.MonitorState counting writes.
type memoryState struct {
	mu     sync.Mutex
	state  entity.MonitorState
	writes int
}

func (m *memoryState) GetMonitorState(ctx context.Context) entity.MonitorState {
	m.mu.Lock()
	defer m.mu.Unlock()

	ret := entity.MonitorState{}
	for k, v := range m.state {
		ret[k] = v
	}

	return ret
}

func (m *memoryState) SaveMonitorState(ctx context.Context, state entity.MonitorState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = state
	m.writes++
}

// fakePanel serves a fixed list and a mutable status per server.
type fakePanel struct {
	mu       sync.Mutex
	statuses map[string]entity.Status
}

func (f *fakePanel) set(id string, status entity.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.statuses[id] = status
}

func (f *fakePanel) get(ctx context.Context, id string) entity.StatusResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	status, ok := f.statuses[id]
	if !ok {
		return entity.StatusResult{Status: entity.StatusUnknown, Source: entity.SourceNone}
	}

	return entity.StatusResult{Status: status, Source: entity.SourceClientResources}
}

var serverList = []entity.Document{
	{"attributes": map[string]interface{}{"uuid": "a", "name": "Survival"}},
	{"attributes": map[string]interface{}{"uuid": "b", "name": "Creative"}},
}

var errPanel = errors.New("panel unavailable")

// Test

func TestProcessing(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Processing test suite")
}

var _ = Describe("Monitor", func() {
	var ctrl *gomock.Controller

	var poller *mock.MockStatusPoller
	var channels *repomock.MockChannelMapReader
	var notifier *pipelinemock.MockProcessing[entity.Notification]
	var state *memoryState
	var panel *fakePanel
	var clock clockwork.FakeClock

	var monitor processing.Monitor

	cycle := func(sequence uint64) entity.Cycle {
		return entity.Cycle{Sequence: sequence, StartedAt: clock.Now()}
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		poller = mock.NewMockStatusPoller(ctrl)
		channels = repomock.NewMockChannelMapReader(ctrl)
		notifier = pipelinemock.NewMockProcessing[entity.Notification](ctrl)
		state = &memoryState{state: entity.MonitorState{}}
		panel = &fakePanel{statuses: map[string]entity.Status{}}
		clock = clockwork.NewFakeClockAt(time.Date(2024, 12, 25, 14, 0, 0, 0, time.UTC))

		monitor = processing.NewMonitor(poller, channels, state, notifier, clock).WithConcurrency(2)
	})

	When("no channel is configured", func() {
		BeforeEach(func() {
			channels.EXPECT().GetChannels(gomock.Any()).Return(entity.ChannelMap{}).Times(1)
		})

		It("should skip the cycle without polling", func(ctx SpecContext) {
			Expect(monitor.Process(ctx, cycle(1))).To(Succeed())
			Expect(state.writes).To(BeZero())
		})
	})

	When("channels are configured", func() {
		BeforeEach(func() {
			channels.EXPECT().GetChannels(gomock.Any()).Return(entity.ChannelMap{"guild-2": "channel-2", "guild-1": "channel-1"}).AnyTimes()
		})

		Context("and the server list is unavailable", func() {
			BeforeEach(func() {
				poller.EXPECT().ListServers(gomock.Any(), gomock.Any()).Return(nil, errPanel).Times(1)
				state.state = entity.MonitorState{"a": entity.StatusOnline}
			})

			It("should abort the cycle with a list_servers error and keep the state", func(ctx SpecContext) {
				err := monitor.Process(ctx, cycle(1))
				Expect(err).Should(MatchError(errPanel))

				processingError := pipeline.AsProcessingError(err)
				Expect(processingError.Category).To(Equal("list_servers"))

				Expect(state.writes).To(BeZero())
				Expect(state.state).To(Equal(entity.MonitorState{"a": entity.StatusOnline}))
			})
		})

		Context("and the panel answers", func() {
			BeforeEach(func() {
				poller.EXPECT().ListServers(gomock.Any(), gomock.Any()).Return(serverList, nil).AnyTimes()
				poller.EXPECT().GetStatus(gomock.Any(), gomock.Any()).DoAndReturn(panel.get).AnyTimes()
			})

			It("should report only the real transition over two cycles", func(ctx SpecContext) {
				By("observing the baseline")
				panel.set("a", entity.StatusOnline)
				panel.set("b", entity.StatusOffline)

				notifier.EXPECT().Process(gomock.Any(), gomock.Any()).Times(0)
				Expect(monitor.Process(ctx, cycle(1))).To(Succeed())

				Expect(state.state).To(Equal(entity.MonitorState{"a": entity.StatusOnline, "b": entity.StatusOffline}))
				Expect(state.writes).To(Equal(1))

				By("stopping server a")
				panel.set("a", entity.StatusOffline)

				var delivered []entity.Notification
				notifier.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, n entity.Notification) error {
					delivered = append(delivered, n)
					return nil
				}).Times(2)

				Expect(monitor.Process(ctx, cycle(2))).To(Succeed())

				Expect(state.state).To(Equal(entity.MonitorState{"a": entity.StatusOffline, "b": entity.StatusOffline}))
				Expect(state.writes).To(Equal(2))

				Expect(delivered).To(HaveLen(2))
				Expect(delivered[0].GuildID).To(Equal("guild-1"), "guilds are sorted")
				Expect(delivered[0].ChannelID).To(Equal("channel-1"))
				Expect(delivered[1].GuildID).To(Equal("guild-2"))
				Expect(delivered[1].ChannelID).To(Equal("channel-2"))

				for _, n := range delivered {
					Expect(n.Change.Server.ID()).To(Equal("a"))
					Expect(n.Change.Server.Name).To(Equal("Survival"))
					Expect(n.Change.Previous).To(Equal(entity.StatusOnline))
					Expect(n.Change.Current).To(Equal(entity.StatusOffline))
					Expect(n.Change.ObservedAt).To(Equal(clock.Now()))
				}

				By("observing the same statuses again")
				Expect(monitor.Process(ctx, cycle(3))).To(Succeed())
				Expect(state.writes).To(Equal(2), "no write without change")
			})

			It("should not report transitions from unknown but still store them", func(ctx SpecContext) {
				state.state = entity.MonitorState{"a": entity.StatusUnknown, "b": entity.StatusOffline}
				panel.set("a", entity.StatusOnline)
				panel.set("b", entity.StatusOffline)

				notifier.EXPECT().Process(gomock.Any(), gomock.Any()).Times(0)

				Expect(monitor.Process(ctx, cycle(1))).To(Succeed())
				Expect(state.state).To(Equal(entity.MonitorState{"a": entity.StatusOnline, "b": entity.StatusOffline}))
			})

			It("should keep delivering when one delivery fails", func(ctx SpecContext) {
				state.state = entity.MonitorState{"a": entity.StatusOnline, "b": entity.StatusOnline}
				panel.set("a", entity.StatusOffline)
				panel.set("b", entity.StatusStarting)

				notifier.EXPECT().Process(gomock.Any(), gomock.Any()).Return(errors.New("discord down")).Times(4)

				Expect(monitor.Process(ctx, cycle(1))).To(Succeed())
				Expect(state.state).To(Equal(entity.MonitorState{"a": entity.StatusOffline, "b": entity.StatusStarting}))
			})

			It("should not persist statuses when the cycle is cancelled", func() {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				Expect(monitor.Process(ctx, cycle(1))).Should(MatchError(context.Canceled))
				Expect(state.writes).To(BeZero())
			})
		})
	})
})

var _ = Describe("CountNotifications", func() {
	It("should count notifications by status and outcome", func(ctx SpecContext) {
		ctrl := gomock.NewController(GinkgoT())
		inner := pipelinemock.NewMockProcessing[entity.Notification](ctrl)
		registry := prometheus.NewPedanticRegistry()

		counted, err := processing.NewCountNotifications(inner, registry, pipeline.MetricsConfig{Namespace: "pterobot", Subsystem: "notify"})
		Expect(err).NotTo(HaveOccurred())

		online := entity.Notification{Change: entity.ChangeEvent{Current: entity.StatusOnline}}
		offline := entity.Notification{Change: entity.ChangeEvent{Current: entity.StatusOffline}}

		gomock.InOrder(
			inner.EXPECT().Process(gomock.Any(), online).Return(nil),
			inner.EXPECT().Process(gomock.Any(), online).Return(nil),
			inner.EXPECT().Process(gomock.Any(), offline).Return(errPanel),
		)

		Expect(counted.Process(ctx, online)).To(Succeed())
		Expect(counted.Process(ctx, online)).To(Succeed())
		Expect(counted.Process(ctx, offline)).Should(MatchError(errPanel))

		count, err := testutil.GatherAndCount(registry, "pterobot_notify_notification_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})
})

var _ = Describe("CountSlowCycles", func() {
	It("should count cycles longer than the threshold", func(ctx SpecContext) {
		clock := clockwork.NewFakeClock()
		registry := prometheus.NewPedanticRegistry()

		slow := &SlowCycle{clock: clock}

		counted, err := processing.NewCountSlowCycles(slow, registry, clock, time.Minute, pipeline.MetricsConfig{Namespace: "pterobot", Subsystem: "monitor"})
		Expect(err).NotTo(HaveOccurred())

		slow.duration = 10 * time.Second
		Expect(counted.Process(ctx, entity.Cycle{Sequence: 1, StartedAt: clock.Now()})).To(Succeed())

		slow.duration = 2 * time.Minute
		Expect(counted.Process(ctx, entity.Cycle{Sequence: 2, StartedAt: clock.Now()})).To(Succeed())

		families, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(HaveLen(1))
		Expect(families[0].Metric[0].Counter.GetValue()).To(BeEquivalentTo(1))
	})
})

type SlowCycle struct {
	clock    clockwork.FakeClock
	duration time.Duration
}

func (s *SlowCycle) Process(ctx context.Context, cycle entity.Cycle) error {
	s.clock.Advance(s.duration)

	return nil
}
