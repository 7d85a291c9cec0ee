package animate

import (
	"context"
	"sync"
	"sync/atomic"
)

// lifecycle is the stop/done bookkeeping shared by Handle and RevealHandle.
// done must be made before first use.
type lifecycle struct {
	stopped   atomic.Bool
	done      chan struct{}
	once      sync.Once
	completed atomic.Bool

	// emitMu is held from the stopped check through the emit call.
	emitMu sync.Mutex
	inEmit atomic.Bool
}

// deliver runs fn unless the animation is stopped. final stops it for good
// once fn has been admitted.
func (l *lifecycle) deliver(final bool, fn func()) bool {
	l.emitMu.Lock()
	defer l.emitMu.Unlock()
	if l.stopped.Load() {
		return false
	}
	if final {
		l.stopped.Store(true)
	}
	l.inEmit.Store(true)
	defer l.inEmit.Store(false)
	fn()
	return true
}

// halt marks the animation stopped and reports whether this call stopped it.
// Unless called from inside emit, it first waits for an emit that was
// admitted before the stop.
func (l *lifecycle) halt() bool {
	first := l.stopped.CompareAndSwap(false, true)
	if !l.inEmit.Load() {
		l.emitMu.Lock()
		l.emitMu.Unlock()
	}
	return first
}

func (l *lifecycle) finish(completed bool) {
	l.once.Do(func() {
		l.completed.Store(completed)
		close(l.done)
	})
}

// Done is closed once the animation completed or was cancelled.
func (l *lifecycle) Done() <-chan struct{} { return l.done }

// Completed reports whether the animation reached its end rather than being
// cancelled.
func (l *lifecycle) Completed() bool { return l.completed.Load() }

// Wait blocks until Done is closed or ctx ends.
func (l *lifecycle) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
