package animate

import "sync"

// VisibilityWatcher reports when a display element enters the visible area.
// fn runs on every hidden-to-visible transition, and immediately if the
// element is already visible at registration. stop unregisters fn.
type VisibilityWatcher interface {
	OnBecomeVisible(elementID string, fn func()) (stop func())
}

// Trigger is an in-memory VisibilityWatcher whose visibility is set by the
// caller.
type Trigger struct {
	mu      sync.Mutex
	next    uint64
	subs    map[string]map[uint64]func()
	visible map[string]bool
}

func NewTrigger() *Trigger {
	return &Trigger{
		subs:    make(map[string]map[uint64]func()),
		visible: make(map[string]bool),
	}
}

func (t *Trigger) OnBecomeVisible(elementID string, fn func()) func() {
	t.mu.Lock()
	t.next++
	id := t.next
	if t.subs[elementID] == nil {
		t.subs[elementID] = make(map[uint64]func())
	}
	t.subs[elementID][id] = fn
	visible := t.visible[elementID]
	t.mu.Unlock()

	if visible {
		fn()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs[elementID], id)
			t.mu.Unlock()
		})
	}
}

// SetVisible records the element's visibility and notifies subscribers when
// it changes from hidden to visible.
func (t *Trigger) SetVisible(elementID string, visible bool) {
	t.mu.Lock()
	was := t.visible[elementID]
	t.visible[elementID] = visible
	var fns []func()
	if visible && !was {
		for _, fn := range t.subs[elementID] {
			fns = append(fns, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (t *Trigger) Reveal(elementID string) { t.SetVisible(elementID, true) }
func (t *Trigger) Hide(elementID string)   { t.SetVisible(elementID, false) }

func (t *Trigger) Visible(elementID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible[elementID]
}

// Watchers returns how many callbacks are registered for elementID.
func (t *Trigger) Watchers(elementID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs[elementID])
}
