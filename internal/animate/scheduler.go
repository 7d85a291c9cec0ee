package animate

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// CancelFunc withdraws a frame request. Calling it more than once, or after
// the frame ran, does nothing.
type CancelFunc func()

// FrameScheduler hands out one callback invocation per request. The callback
// receives the scheduler's notion of the current time.
type FrameScheduler interface {
	RequestNextFrame(fn func(now time.Time)) CancelFunc
}

// TickScheduler fires each request once, interval after it was made, on the
// given clock. Callbacks run on the clock's timer goroutine.
type TickScheduler struct {
	clock    clockwork.Clock
	interval time.Duration
}

func NewTickScheduler(clock clockwork.Clock, interval time.Duration) *TickScheduler {
	return &TickScheduler{clock: clock, interval: interval}
}

func (s *TickScheduler) Interval() time.Duration { return s.interval }

func (s *TickScheduler) RequestNextFrame(fn func(now time.Time)) CancelFunc {
	t := s.clock.AfterFunc(s.interval, func() {
		fn(s.clock.Now())
	})
	var once sync.Once
	return func() {
		once.Do(func() { t.Stop() })
	}
}
