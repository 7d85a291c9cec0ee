package viz

import "github.com/san-kum/neurospark/internal/animate"

// span is a half-open range of content lines.
type span struct {
	start, end int
}

func (s span) intersects(top, height int) bool {
	return s.start < top+height && s.end > top
}

// viewportWatcher reports regions of a scrolling page entering the visible
// window. It records region positions at render time and re-evaluates them
// whenever the window moves.
type viewportWatcher struct {
	*animate.Trigger
	regions map[string]span
}

func newViewportWatcher() *viewportWatcher {
	return &viewportWatcher{
		Trigger: animate.NewTrigger(),
		regions: make(map[string]span),
	}
}

func (w *viewportWatcher) place(id string, start, end int) {
	w.regions[id] = span{start: start, end: end}
}

// update marks every region visible or hidden for a window starting at top.
func (w *viewportWatcher) update(top, height int) {
	for id, r := range w.regions {
		w.SetVisible(id, height > 0 && r.intersects(top, height))
	}
}
