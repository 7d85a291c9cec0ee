package animate_test

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurospark/internal/animate"
)

type recorder struct {
	mu     sync.Mutex
	values []float64
}

func (r *recorder) emit(v float64) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.values)
}

var _ = Describe("Start", func() {
	var (
		sched *animate.ManualScheduler
		rec   *recorder
	)

	BeforeEach(func() {
		sched = animate.NewManualScheduler(clockwork.NewFakeClock(), tick)
		rec = &recorder{}
	})

	It("emits nothing until the first frame", func() {
		h := animate.Start(sched, 98.2, counterDuration, tick, rec.emit)
		Expect(rec.snapshot()).To(BeEmpty())
		Expect(h.Value()).To(Equal(0.0))
		Expect(sched.Len()).To(Equal(1))
	})

	It("emits one value per frame and ends exactly on the target", func() {
		h := animate.Start(sched, 98.2, counterDuration, tick, rec.emit)

		steps := sched.RunUntilIdle(0)

		values := rec.snapshot()
		Expect(steps).To(Equal(94))
		Expect(values).To(Equal(slices.Collect(animate.Values(98.2, counterDuration, tick))))
		Expect(values[len(values)-1]).To(Equal(98.2))
		Expect(h.Done()).To(BeClosed())
		Expect(h.Completed()).To(BeTrue())
		Expect(h.Value()).To(Equal(98.2))
	})

	It("finishes within the configured duration of simulated time", func() {
		h := animate.Start(sched, 4, counterDuration, tick, rec.emit)
		sched.Advance(counterDuration + tick)

		Expect(h.Completed()).To(BeTrue())
		Expect(rec.snapshot()).To(HaveLen(94))
		Expect(rec.snapshot()[93]).To(Equal(4.0))
	})

	It("stops emitting once cancelled", func() {
		h := animate.Start(sched, 98.2, counterDuration, tick, rec.emit)
		sched.Advance(10 * tick)
		Expect(rec.snapshot()).To(HaveLen(10))
		frozen := h.Value()

		h.Cancel()
		sched.Advance(2 * counterDuration)

		Expect(rec.snapshot()).To(HaveLen(10))
		Expect(h.Value()).To(Equal(frozen))
		Expect(h.Done()).To(BeClosed())
		Expect(h.Completed()).To(BeFalse())
		Expect(sched.Len()).To(BeZero())
	})

	It("tolerates repeated cancellation, including after completion", func() {
		h := animate.Start(sched, 12.8, counterDuration, tick, rec.emit)
		h.Cancel()
		h.Cancel()
		Expect(h.Completed()).To(BeFalse())

		done := animate.Start(sched, 12.8, counterDuration, tick, nil)
		sched.RunUntilIdle(0)
		done.Cancel()
		Expect(done.Completed()).To(BeTrue())
	})

	It("honours cancellation from inside the emit callback", func() {
		var h *animate.Handle
		h = animate.Start(sched, 98.2, counterDuration, tick, func(v float64) {
			rec.emit(v)
			if v >= 50 {
				h.Cancel()
			}
		})
		sched.Advance(2 * counterDuration)

		values := rec.snapshot()
		Expect(values[len(values)-1]).To(BeNumerically(">=", 50))
		Expect(values[len(values)-2]).To(BeNumerically("<", 50))
		Expect(h.Completed()).To(BeFalse())
	})

	It("runs independent sessions side by side", func() {
		a, b := &recorder{}, &recorder{}
		ha := animate.Start(sched, 1847, counterDuration, tick, a.emit)
		hb := animate.Start(sched, 342, counterDuration, tick, b.emit)

		sched.Advance(5 * tick)
		ha.Cancel()
		sched.RunUntilIdle(0)

		Expect(a.snapshot()).To(HaveLen(5))
		Expect(b.snapshot()[len(b.snapshot())-1]).To(Equal(342.0))
		Expect(hb.Completed()).To(BeTrue())
	})

	It("counts down from an explicit start", func() {
		h := animate.StartFrom(sched, 100, 68.4, counterDuration, tick, rec.emit)
		sched.RunUntilIdle(0)

		values := rec.snapshot()
		Expect(values[len(values)-1]).To(Equal(68.4))
		Expect(slices.IsSortedFunc(values, func(x, y float64) int {
			switch {
			case x > y:
				return -1
			case x < y:
				return 1
			}
			return 0
		})).To(BeTrue())
		Expect(h.Completed()).To(BeTrue())
	})

	It("waits for completion or context cancellation", func() {
		h := animate.Start(sched, 23, counterDuration, tick, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(h.Wait(ctx)).To(MatchError(context.Canceled))

		sched.RunUntilIdle(0)
		Expect(h.Wait(context.Background())).To(Succeed())
	})
})

var _ = Describe("Start on a TickScheduler", func() {
	It("completes on the real clock", func() {
		rec := &recorder{}
		sched := animate.NewTickScheduler(clockwork.NewRealClock(), time.Millisecond)
		h := animate.Start(sched, 9.5, 20*time.Millisecond, time.Millisecond, rec.emit)

		Eventually(h.Done()).WithTimeout(5 * time.Second).Should(BeClosed())
		Expect(h.Completed()).To(BeTrue())
		Expect(rec.snapshot()).To(HaveLen(20))
		Expect(rec.snapshot()[19]).To(Equal(9.5))
	})

	It("drops the pending timer when cancelled", func() {
		clock := clockwork.NewFakeClock()
		rec := &recorder{}
		h := animate.Start(animate.NewTickScheduler(clock, tick), 98.2, counterDuration, tick, rec.emit)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(clock.BlockUntilContext(ctx, 1)).To(Succeed())

		h.Cancel()
		clock.Advance(counterDuration)

		Consistently(rec.snapshot).WithTimeout(50 * time.Millisecond).Should(BeEmpty())
		Expect(h.Completed()).To(BeFalse())
	})
})

var _ = Describe("Cancel from another goroutine", func() {
	It("lets at most the emit already in flight finish after it returns", func() {
		for _, d := range []time.Duration{counterDuration, tick} {
			for range 300 {
				sched := animate.NewManualScheduler(clockwork.NewFakeClock(), tick)
				var cancelled atomic.Bool
				var late atomic.Int32
				h := animate.Start(sched, 98.2, d, tick, func(float64) {
					if cancelled.Load() {
						late.Add(1)
					}
				})

				stepped := make(chan struct{})
				go func() {
					defer close(stepped)
					for range 4 {
						sched.Step()
					}
				}()
				h.Cancel()
				cancelled.Store(true)
				<-stepped

				Expect(late.Load()).To(BeNumerically("<=", 1))
				Expect(h.Done()).To(BeClosed())
			}
		}
	})

	It("returns while an emit is blocked and stops later ticks", func() {
		sched := animate.NewManualScheduler(clockwork.NewFakeClock(), tick)
		entered, release := make(chan struct{}), make(chan struct{})
		var calls atomic.Int32
		h := animate.Start(sched, 98.2, counterDuration, tick, func(float64) {
			if calls.Add(1) == 1 {
				close(entered)
				<-release
			}
		})

		stepped := make(chan struct{})
		go func() {
			defer close(stepped)
			sched.Step()
		}()
		Eventually(entered).Should(BeClosed())

		cancelled := make(chan struct{})
		go func() {
			defer close(cancelled)
			h.Cancel()
		}()
		Eventually(cancelled).Should(BeClosed())
		Expect(h.Done()).To(BeClosed())

		close(release)
		Eventually(stepped).Should(BeClosed())
		sched.Advance(counterDuration)
		Expect(calls.Load()).To(Equal(int32(1)))
		Expect(h.Completed()).To(BeFalse())
	})
})
