package animate

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type frameRequest struct {
	id uint64
	fn func(time.Time)
}

// FrameQueue collects frame requests until the owner of the refresh loop
// flushes them. Requests made while a flush is running wait for the next one.
type FrameQueue struct {
	mu      sync.Mutex
	next    uint64
	pending []frameRequest
	live    map[uint64]struct{}
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{live: make(map[uint64]struct{})}
}

func (q *FrameQueue) RequestNextFrame(fn func(now time.Time)) CancelFunc {
	q.mu.Lock()
	q.next++
	id := q.next
	q.pending = append(q.pending, frameRequest{id: id, fn: fn})
	q.live[id] = struct{}{}
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.live, id)
		q.mu.Unlock()
	}
}

// Flush runs, in request order, every live callback queued before the call
// and returns how many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	ran := 0
	for _, req := range batch {
		if !q.claim(req.id) {
			continue
		}
		req.fn(now)
		ran++
	}
	return ran
}

// claim removes id from the live set, reporting whether it was still live.
// An earlier callback in the same batch may have cancelled it.
func (q *FrameQueue) claim(id uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.live[id]; !ok {
		return false
	}
	delete(q.live, id)
	return true
}

// Len reports the number of live requests.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.live)
}

// ManualScheduler is a FrameQueue bound to a fake clock. Each Step advances
// the clock by one interval and flushes on the caller's goroutine.
type ManualScheduler struct {
	*FrameQueue
	clock    *clockwork.FakeClock
	interval time.Duration
}

func NewManualScheduler(clock *clockwork.FakeClock, interval time.Duration) *ManualScheduler {
	return &ManualScheduler{
		FrameQueue: NewFrameQueue(),
		clock:      clock,
		interval:   interval,
	}
}

func (m *ManualScheduler) Clock() *clockwork.FakeClock { return m.clock }
func (m *ManualScheduler) Interval() time.Duration     { return m.interval }

func (m *ManualScheduler) Step() int {
	m.clock.Advance(m.interval)
	return m.Flush(m.clock.Now())
}

// Advance steps through every whole interval contained in d.
func (m *ManualScheduler) Advance(d time.Duration) int {
	ran := 0
	for n := int64(d / m.interval); n > 0; n-- {
		ran += m.Step()
	}
	return ran
}

// RunUntilIdle steps until no request is pending and returns the number of
// steps taken. A positive limit caps the steps; zero means no cap.
func (m *ManualScheduler) RunUntilIdle(limit int) int {
	steps := 0
	for m.Len() > 0 {
		if limit > 0 && steps >= limit {
			break
		}
		m.Step()
		steps++
	}
	return steps
}
