package main

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/san-kum/neurospark/internal/animate"
	"github.com/san-kum/neurospark/internal/export"
)

// recordCounter runs a counter to completion in simulated time.
func recordCounter(target float64, duration, tick time.Duration) *export.Trace {
	sched := animate.NewManualScheduler(clockwork.NewFakeClock(), tick)
	start := sched.Clock().Now()

	tr := export.NewTrace("counter", duration, tick, "value")
	animate.Start(sched, target, duration, tick, func(v float64) {
		tr.Add(sched.Clock().Since(start), v)
	})
	sched.RunUntilIdle(0)
	return tr
}

// recordCounterRealtime runs a counter on the wall clock and blocks until it
// completes or ctx ends.
func recordCounterRealtime(ctx context.Context, target float64, duration, tick time.Duration) (*export.Trace, error) {
	clock := clockwork.NewRealClock()
	sched := animate.NewTickScheduler(clock, tick)
	start := clock.Now()

	var mu sync.Mutex
	tr := export.NewTrace("counter", duration, tick, "value")
	h := animate.Start(sched, target, duration, tick, func(v float64) {
		mu.Lock()
		tr.Add(clock.Since(start), v)
		mu.Unlock()
	})

	if err := h.Wait(ctx); err != nil {
		h.Cancel()
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()
	return tr, nil
}

// recordReveal runs the landing metrics reveal in simulated time, starting
// the moment the metrics become visible.
func recordReveal(region string, metrics []animate.Metric, duration, interval time.Duration) *export.Trace {
	sched := animate.NewManualScheduler(clockwork.NewFakeClock(), interval)
	trigger := animate.NewTrigger()

	columns := []string{"progress"}
	for _, m := range metrics {
		columns = append(columns, m.Name)
	}
	tr := export.NewTrace("reveal", duration, interval, columns...)

	animate.Reveal(trigger, region, sched.Clock(), sched, duration, metrics, func(s animate.Sample) {
		values := []float64{s.Progress}
		for _, m := range metrics {
			values = append(values, s.Values[m.Name])
		}
		tr.Add(s.Elapsed, values...)
	})
	trigger.Reveal(region)
	sched.RunUntilIdle(0)
	return tr
}
