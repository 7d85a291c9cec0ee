package animate

import (
	"log/slog"
	"sync"
	"time"
)

// Handle controls a running counter started by Start.
type Handle struct {
	lifecycle

	sched   FrameScheduler
	session *Session
	emit    func(float64)

	mu     sync.Mutex
	cancel CancelFunc
	value  float64
}

// Start counts from zero to target, emitting one value per scheduled frame.
// tick is the nominal frame interval used to size the increment; it should
// match the scheduler's cadence.
func Start(sched FrameScheduler, target float64, duration, tick time.Duration, emit func(float64)) *Handle {
	return StartFrom(sched, 0, target, duration, tick, emit)
}

// StartFrom is Start with an explicit start value. Counting down is allowed.
func StartFrom(sched FrameScheduler, start, target float64, duration, tick time.Duration, emit func(float64)) *Handle {
	if emit == nil {
		emit = func(float64) {}
	}
	h := &Handle{
		sched:   sched,
		session: NewSession(start, target, duration, tick),
		emit:    emit,
		value:   start,
	}
	h.done = make(chan struct{})

	slog.Debug("animate: counter started", "start", start, "target", target, "duration", duration, "tick", tick)
	h.schedule()
	return h
}

func (h *Handle) schedule() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped.Load() {
		return
	}
	h.cancel = h.sched.RequestNextFrame(h.tick)
}

// tick runs on the scheduler. Ticks of one handle never overlap because the
// next frame is requested only at the end of the current one.
func (h *Handle) tick(time.Time) {
	if h.stopped.Load() {
		return
	}

	v, done := h.session.Step()
	delivered := h.deliver(done, func() {
		h.mu.Lock()
		h.value = v
		h.mu.Unlock()
		h.emit(v)
	})
	if !delivered {
		return
	}

	if done {
		slog.Debug("animate: counter complete", "target", v, "elapsed", h.session.Elapsed())
		h.finish(true)
		return
	}
	h.schedule()
}

// Cancel stops the counter. Once it returns, emit is not called again. It is
// safe from any goroutine and from inside emit.
func (h *Handle) Cancel() {
	if !h.halt() {
		return
	}
	h.mu.Lock()
	cancel := h.cancel
	h.cancel = nil
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	slog.Debug("animate: counter cancelled", "target", h.session.Target(), "value", h.Value())
	h.finish(false)
}

// Value is the last emitted value, or the start value before the first tick.
func (h *Handle) Value() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value
}

func (h *Handle) Target() float64 { return h.session.Target() }
