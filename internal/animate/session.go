package animate

import (
	"iter"
	"time"
)

// Session is one count-up run from a start value to a target. It is driven by
// calling Step once per tick and is not safe for concurrent use.
type Session struct {
	start     float64
	target    float64
	duration  time.Duration
	tick      time.Duration
	increment float64
	current   float64
	elapsed   time.Duration
	complete  bool
}

func NewSession(start, target float64, duration, tick time.Duration) *Session {
	steps := float64(duration) / float64(tick)
	return &Session{
		start:     start,
		target:    target,
		duration:  duration,
		tick:      tick,
		increment: (target - start) / steps,
		current:   start,
	}
}

// Step advances one tick and returns the value to display. The final step
// returns exactly the target with done set; later calls repeat it.
func (s *Session) Step() (value float64, done bool) {
	if s.complete {
		return s.target, true
	}

	s.current += s.increment
	s.elapsed += s.tick

	if s.reached() || s.elapsed >= s.duration {
		s.current = s.target
		s.complete = true
		return s.target, true
	}

	if s.upward() {
		return TruncateTenths(s.current), false
	}
	return ceilTenths(s.current), false
}

func (s *Session) reached() bool {
	if s.upward() {
		return s.current >= s.target
	}
	return s.current <= s.target
}

func (s *Session) upward() bool                { return s.target >= s.start }
func (s *Session) Start() float64              { return s.start }
func (s *Session) Target() float64             { return s.target }
func (s *Session) Current() float64            { return s.current }
func (s *Session) Elapsed() time.Duration      { return s.elapsed }
func (s *Session) Duration() time.Duration     { return s.duration }
func (s *Session) TickInterval() time.Duration { return s.tick }
func (s *Session) Done() bool                  { return s.complete }

// Values yields the display values of a session counting from zero to target.
// The sequence is computed lazily and ends with target.
func Values(target float64, duration, tick time.Duration) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		s := NewSession(0, target, duration, tick)
		for {
			v, done := s.Step()
			if !yield(v) || done {
				return
			}
		}
	}
}
