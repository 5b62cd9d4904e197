package pipeline_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/pkg/pipeline"
	"github.com/pterobot/pterobot/pkg/pipeline/mock"
)

type Tick struct {
	Sequence uint64
	At       time.Time
}

func newTick(sequence uint64, at time.Time) Tick {
	return Tick{Sequence: sequence, At: at}
}

// recordingProcessor pushes every tick it receives and blocks on gate when set.
type recordingProcessor struct {
	ticks chan Tick
	gate  chan struct{}
	err   error
}

func (r *recordingProcessor) Process(ctx context.Context, tick Tick) error {
	r.ticks <- tick

	if r.gate != nil {
		<-r.gate
	}

	return r.err
}

var _ = Describe("Testing Runner", func() {
	var fakeClock clockwork.FakeClock
	var proc *recordingProcessor

	BeforeEach(func() {
		fakeClock = clockwork.NewFakeClock()
		proc = &recordingProcessor{ticks: make(chan Tick, 10)}
	})

	When("the period is not positive", func() {
		It("should refuse to start", func(ctx SpecContext) {
			runner := pipeline.NewRunner[Tick](fakeClock, 0, newTick, proc, nil)
			Expect(runner.Start(ctx)).Should(MatchError(pipeline.ErrInvalidPeriod))
		})
	})

	When("the runner is started", func() {
		var cancel context.CancelFunc
		var done chan error

		JustBeforeEach(func() {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			runner := pipeline.NewRunner[Tick](fakeClock, time.Minute, newTick, proc, nil)

			done = make(chan error, 1)
			go func() {
				done <- runner.Start(ctx)
			}()
		})

		AfterEach(func() {
			cancel()
			if proc.gate != nil {
				close(proc.gate)
			}
			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})

		It("should fire immediately and then once per period", func() {
			Eventually(proc.ticks).Should(Receive(HaveField("Sequence", BeEquivalentTo(1))))

			fakeClock.BlockUntil(1)
			fakeClock.Advance(time.Minute)
			Eventually(proc.ticks).Should(Receive(HaveField("Sequence", BeEquivalentTo(2))))

			fakeClock.BlockUntil(1)
			fakeClock.Advance(time.Minute)
			Eventually(proc.ticks).Should(Receive(HaveField("Sequence", BeEquivalentTo(3))))
		})

		Context("and a run takes longer than the period", func() {
			BeforeEach(func() {
				proc.gate = make(chan struct{})
			})

			It("should drop the overlapping tick", func() {
				Eventually(proc.ticks).Should(Receive())

				fakeClock.BlockUntil(1)
				fakeClock.Advance(time.Minute)
				Consistently(proc.ticks, 100*time.Millisecond).ShouldNot(Receive())
			})
		})
	})
})

var _ = Describe("Testing Handler", func() {
	var ctrl *gomock.Controller
	var proc *mock.MockProcessing[Delivery]
	var errProc *mock.MockErrorProcessing

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		proc = mock.NewMockProcessing[Delivery](ctrl)
		errProc = mock.NewMockErrorProcessing(ctrl)
	})

	When("the processing succeeds", func() {
		It("should not call the error processing", func(ctx SpecContext) {
			proc.EXPECT().Process(gomock.Any(), delivery).Return(nil).Times(1)

			Expect(pipeline.NewHandler[Delivery](proc, errProc).Handle(ctx, delivery)).To(BeTrue())
		})
	})

	When("the processing fails", func() {
		It("should forward the categorized error", func(ctx SpecContext) {
			proc.EXPECT().Process(gomock.Any(), delivery).Return(errRetryableDelivery).Times(1)
			errProc.EXPECT().Process(gomock.Any(), gomock.Cond(func(x any) bool {
				processingError, ok := x.(pipeline.ErrProcessingError)
				return ok && processingError.Category == oneCategory
			})).Return(nil).Times(1)

			Expect(pipeline.NewHandler[Delivery](proc, errProc).Handle(ctx, delivery)).To(BeFalse())
		})

		It("should use the unknown category for plain errors", func(ctx SpecContext) {
			proc.EXPECT().Process(gomock.Any(), delivery).Return(errDelivery).Times(1)
			errProc.EXPECT().Process(gomock.Any(), gomock.Cond(func(x any) bool {
				processingError, ok := x.(pipeline.ErrProcessingError)
				return ok && processingError.Category == pipeline.UnknownCategory && errors.Is(processingError, errDelivery)
			})).Return(nil).Times(1)

			Expect(pipeline.NewHandler[Delivery](proc, errProc).Handle(ctx, delivery)).To(BeFalse())
		})
	})

	When("the processing is still in flight", func() {
		It("should count the skipped payload", func(ctx SpecContext) {
			proc.EXPECT().Process(gomock.Any(), delivery).Return(pipeline.ErrInFlight).Times(1)

			skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "skipped_total"})
			handler := pipeline.NewHandler[Delivery](proc, errProc).WithSkippedCounter(skipped)

			Expect(handler.Handle(ctx, delivery)).To(BeFalse())
			Expect(testutil.ToFloat64(skipped)).To(BeEquivalentTo(1))
		})
	})

	When("the context is cancelled", func() {
		It("should not process the error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			var calls atomic.Int32
			proc.EXPECT().Process(gomock.Any(), delivery).DoAndReturn(func(context.Context, Delivery) error {
				calls.Add(1)
				return errDelivery
			}).Times(1)

			Expect(pipeline.NewHandler[Delivery](proc, errProc).Handle(ctx, delivery)).To(BeFalse())
			Expect(calls.Load()).To(BeEquivalentTo(1))
		})
	})
})
