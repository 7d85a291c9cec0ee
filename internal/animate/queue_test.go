package animate_test

import (
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurospark/internal/animate"
)

var _ = Describe("FrameQueue", func() {
	It("runs callbacks in request order with the flush time", func() {
		q := animate.NewFrameQueue()
		now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

		var order []string
		var seen time.Time
		q.RequestNextFrame(func(t time.Time) { order = append(order, "a"); seen = t })
		q.RequestNextFrame(func(time.Time) { order = append(order, "b") })

		Expect(q.Flush(now)).To(Equal(2))
		Expect(order).To(Equal([]string{"a", "b"}))
		Expect(seen).To(Equal(now))
		Expect(q.Len()).To(BeZero())
	})

	It("defers requests made during a flush to the next one", func() {
		q := animate.NewFrameQueue()
		count := 0
		var again func(time.Time)
		again = func(time.Time) {
			count++
			q.RequestNextFrame(again)
		}
		q.RequestNextFrame(again)

		Expect(q.Flush(time.Now())).To(Equal(1))
		Expect(q.Flush(time.Now())).To(Equal(1))
		Expect(count).To(Equal(2))
		Expect(q.Len()).To(Equal(1))
	})

	It("skips a request cancelled earlier in the same batch", func() {
		q := animate.NewFrameQueue()
		var cancelB animate.CancelFunc
		ran := false
		q.RequestNextFrame(func(time.Time) { cancelB() })
		cancelB = q.RequestNextFrame(func(time.Time) { ran = true })

		Expect(q.Flush(time.Now())).To(Equal(1))
		Expect(ran).To(BeFalse())
		cancelB()
	})
})

var _ = Describe("ManualScheduler", func() {
	It("advances the fake clock one interval per step", func() {
		clock := clockwork.NewFakeClock()
		start := clock.Now()
		sched := animate.NewManualScheduler(clock, tick)

		var at []time.Duration
		sched.RequestNextFrame(func(now time.Time) { at = append(at, now.Sub(start)) })

		Expect(sched.Advance(3*tick + tick/2)).To(Equal(1))
		Expect(at).To(Equal([]time.Duration{tick}))
		Expect(clock.Now().Sub(start)).To(Equal(3 * tick))
	})

	It("caps RunUntilIdle at the limit", func() {
		sched := animate.NewManualScheduler(clockwork.NewFakeClock(), tick)
		var again func(time.Time)
		again = func(time.Time) { sched.RequestNextFrame(again) }
		sched.RequestNextFrame(again)

		Expect(sched.RunUntilIdle(7)).To(Equal(7))
		Expect(sched.Len()).To(Equal(1))
	})
})
