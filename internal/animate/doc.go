// Package animate provides the count-up primitives behind every animated
// number on the NeuroSpark screens.
//
// Two variants exist:
//
//   - [Start]: fixed-tick interpolation. Each scheduled frame adds a constant
//     increment and emits the value truncated to tenths, ending exactly on the
//     target.
//   - [Reveal]: frame-driven interpolation. Once an element becomes visible,
//     every frame recomputes progress from wall time and scales each [Metric]
//     with floor semantics. It runs once and never restarts.
//
// Scheduling is injected through [FrameScheduler]. [TickScheduler] runs on a
// clockwork clock, [FrameQueue] is flushed by an external refresh loop (the
// terminal UI), and [ManualScheduler] advances a fake clock synchronously.
//
// # Example
//
//	sched := animate.NewManualScheduler(clockwork.NewFakeClock(), 16*time.Millisecond)
//	h := animate.Start(sched, 98.2, 1500*time.Millisecond, 16*time.Millisecond, func(v float64) {
//		fmt.Println(v)
//	})
//	sched.RunUntilIdle(0)
//	<-h.Done()
//
// # Inputs
//
// Durations and ticks must be positive and targets finite. Nothing here
// validates that; zero or negative values follow float division rules and may
// never complete.
package animate
