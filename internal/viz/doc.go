// Package viz provides the NeuroSpark terminal screens.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Landing]: scrolling marketing page whose fleet metrics reveal when
//     their panel scrolls into view
//   - [Dashboard]: fleet operations screen with count-up KPI cards
//   - [App]: routes between the two
//   - Theme selection with 5 built-in color schemes
//
// All animation callbacks run inside Update. Each screen owns an
// animate.FrameQueue that a tea.Tick flushes while frames are pending.
//
// # Key Bindings
//
//	↑/↓ PgUp/PgDn - Scroll the landing page
//	D             - Open the dashboard
//	J/K, Enter    - Select a fleet unit and toggle its details
//	T             - Cycle color themes
//	B/Esc         - Back to the landing page
//	Q             - Quit
package viz
