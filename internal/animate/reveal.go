package animate

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Metric is one number animated by Reveal, scaled from zero to Max.
type Metric struct {
	Name      string
	Max       float64
	Precision Precision
}

// At returns the metric's display value at the given progress.
func (m Metric) At(progress float64) float64 {
	if m.Precision == Tenths {
		return ScaleTenths(progress, m.Max)
	}
	return Scale(progress, m.Max)
}

// Sample is one frame of a reveal.
type Sample struct {
	Progress float64
	Elapsed  time.Duration
	Values   map[string]float64
}

// Progress returns min((now-start)/duration, 1), clamped at zero.
func Progress(start, now time.Time, duration time.Duration) float64 {
	p := math.Min(float64(now.Sub(start))/float64(duration), 1)
	if p < 0 {
		return 0
	}
	return p
}

// RevealHandle controls an animation started by Reveal.
type RevealHandle struct {
	lifecycle

	clock    clockwork.Clock
	sched    FrameScheduler
	duration time.Duration
	metrics  []Metric
	emit     func(Sample)

	mu          sync.Mutex
	stopWatch   func()
	cancelFrame CancelFunc
	started     bool
	startTime   time.Time
	last        Sample
}

// Reveal waits for elementID to become visible, then animates metrics from
// zero to their maxima over duration, emitting one Sample per frame. The
// first sample is emitted at the moment of visibility with progress zero.
// Later visibility changes do not restart it.
func Reveal(w VisibilityWatcher, elementID string, clock clockwork.Clock, sched FrameScheduler, duration time.Duration, metrics []Metric, emit func(Sample)) *RevealHandle {
	if emit == nil {
		emit = func(Sample) {}
	}
	r := &RevealHandle{
		clock:    clock,
		sched:    sched,
		duration: duration,
		metrics:  metrics,
		emit:     emit,
		last:     zeroSample(metrics),
	}
	r.done = make(chan struct{})

	stop := w.OnBecomeVisible(elementID, func() { r.begin(elementID) })

	r.mu.Lock()
	if r.started || r.stopped.Load() {
		r.mu.Unlock()
		stop()
		return r
	}
	r.stopWatch = stop
	r.mu.Unlock()
	return r
}

func (r *RevealHandle) begin(elementID string) {
	r.mu.Lock()
	if r.started || r.stopped.Load() {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.startTime = r.clock.Now()
	stop := r.stopWatch
	r.stopWatch = nil
	r.mu.Unlock()

	if stop != nil {
		stop()
	}
	slog.Debug("animate: reveal triggered", "element", elementID, "duration", r.duration)
	r.frame(r.startTime)
}

func (r *RevealHandle) frame(now time.Time) {
	if r.stopped.Load() {
		return
	}

	r.mu.Lock()
	s := r.sample(now)
	r.mu.Unlock()

	final := s.Progress >= 1
	delivered := r.deliver(final, func() {
		r.mu.Lock()
		r.last = s
		r.mu.Unlock()
		r.emit(s)
	})
	if !delivered {
		return
	}

	if final {
		r.finish(true)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped.Load() {
		return
	}
	r.cancelFrame = r.sched.RequestNextFrame(r.frame)
}

// sample must be called with r.mu held.
func (r *RevealHandle) sample(now time.Time) Sample {
	p := Progress(r.startTime, now, r.duration)
	values := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		values[m.Name] = m.At(p)
	}
	return Sample{Progress: p, Elapsed: now.Sub(r.startTime), Values: values}
}

func zeroSample(metrics []Metric) Sample {
	values := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		values[m.Name] = 0
	}
	return Sample{Values: values}
}

// Cancel stops watching and stops the frame chain. Once it returns, emit is
// not called again. Safe to call repeatedly and from inside emit.
func (r *RevealHandle) Cancel() {
	if !r.halt() {
		return
	}
	r.mu.Lock()
	stop, cancel := r.stopWatch, r.cancelFrame
	r.stopWatch, r.cancelFrame = nil, nil
	r.mu.Unlock()

	if stop != nil {
		stop()
	}
	if cancel != nil {
		cancel()
	}
	r.finish(false)
}

// Started reports whether the element has become visible.
func (r *RevealHandle) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// Last returns the most recent sample; all zeros before the reveal starts.
func (r *RevealHandle) Last() Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
