package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/san-kum/neurospark/internal/animate"
)

// FrameMsg is delivered by a frameLoop's tea.Tick. Only the loop that
// requested it reacts.
type FrameMsg struct {
	loop *frameLoop
	At   time.Time
}

// frameLoop drives an animate.FrameQueue from bubbletea ticks, so every
// animation callback runs inside Update. It ticks only while work is queued.
type frameLoop struct {
	queue    *animate.FrameQueue
	clock    clockwork.Clock
	interval time.Duration
	running  bool
}

func newFrameLoop(clock clockwork.Clock, interval time.Duration) *frameLoop {
	return &frameLoop{
		queue:    animate.NewFrameQueue(),
		clock:    clock,
		interval: interval,
	}
}

// kick starts ticking if frames are pending and no tick is in flight.
func (l *frameLoop) kick() tea.Cmd {
	if l.running || l.queue.Len() == 0 {
		return nil
	}
	l.running = true
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return FrameMsg{loop: l, At: t}
	})
}

// handle flushes the queue for msg and schedules the next tick. It ignores
// messages from other loops.
func (l *frameLoop) handle(msg FrameMsg) (bool, tea.Cmd) {
	if msg.loop != l {
		return false, nil
	}
	l.running = false
	l.queue.Flush(l.clock.Now())
	return true, l.kick()
}

// counters holds the count-up animations of one screen.
type counters struct {
	loop    *frameLoop
	handles map[string]*animate.Handle
	order   []string
}

func newCounters(loop *frameLoop) *counters {
	return &counters{loop: loop, handles: make(map[string]*animate.Handle)}
}

// start counts key from its current value to target, replacing any
// animation already running for it.
func (c *counters) start(key string, target float64, duration, tick time.Duration) {
	from := 0.0
	if h, ok := c.handles[key]; ok {
		h.Cancel()
		from = h.Value()
	} else {
		c.order = append(c.order, key)
	}
	c.handles[key] = animate.StartFrom(c.loop.queue, from, target, duration, tick, nil)
}

// value is the last emitted value for key, or zero.
func (c *counters) value(key string) float64 {
	if h, ok := c.handles[key]; ok {
		return h.Value()
	}
	return 0
}

func (c *counters) settled() bool {
	for _, h := range c.handles {
		select {
		case <-h.Done():
		default:
			return false
		}
	}
	return true
}

func (c *counters) cancel() {
	for _, key := range c.order {
		c.handles[key].Cancel()
	}
}
