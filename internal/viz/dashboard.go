package viz

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/neurospark/internal/fleet"
)

const (
	noRobot = -1

	coverageKey = "coverage"
	batteryKey  = "average_battery"
)

// headlineKPIs are the four cards across the top of the dashboard.
var headlineKPIs = []string{"panel_efficiency", "energy_output", "water_saved", "cleaning_cycles"}

const architectureNote = "Solar panels are monitored by autonomous robots. AI-driven detection " +
	"identifies dust patterns and contamination. Real-time data flows to cloud infrastructure. " +
	"The analytics dashboard gives operators actionable intelligence."

// Dashboard is the fleet operations screen. Every KPI counts up from zero
// when the screen opens.
type Dashboard struct {
	opts   Options
	styles Styles
	loop   *frameLoop
	counts *counters
	keys   dashboardKeys
	help   help.Model

	coverage progress.Model
	battery  progress.Model

	cursor   int
	selected int
	width    int
	height   int
}

func NewDashboard(opts Options) Dashboard {
	opts = opts.withDefaults()
	loop := newFrameLoop(opts.Clock, opts.Animation.TickInterval)
	m := Dashboard{
		opts:     opts,
		styles:   NewStyles(opts.Theme),
		loop:     loop,
		counts:   newCounters(loop),
		keys:     newDashboardKeys(),
		help:     newHelp(NewStyles(opts.Theme)),
		coverage: progress.New(progress.WithDefaultGradient(), progress.WithWidth(32), progress.WithoutPercentage()),
		battery:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(32), progress.WithoutPercentage()),
		selected: noRobot,
		width:    100,
		height:   40,
	}
	m.startCounters()
	return m
}

// startCounters animates every KPI value and caption toward its fixture
// value. Counters already on screen continue from where they are.
func (m Dashboard) startCounters() {
	a := m.opts.Animation
	for _, k := range m.opts.Fixtures.KPIs {
		m.counts.start(k.Key, k.Value, a.CounterDuration, a.TickInterval)
		if k.CaptionValue != 0 {
			m.counts.start(k.Key+".caption", k.CaptionValue, a.CounterDuration, a.TickInterval)
		}
	}
	slog.Debug("viz: dashboard counters started", "kpis", len(m.opts.Fixtures.KPIs))
}

func (m Dashboard) Init() tea.Cmd {
	return m.loop.kick()
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		_, cmd := m.loop.handle(msg)
		return m, cmd
	case FixturesMsg:
		m.opts.Fixtures = msg.Fixtures
		if m.cursor >= len(msg.Fixtures.Robots) {
			m.cursor = max(0, len(msg.Fixtures.Robots)-1)
		}
		if _, ok := msg.Fixtures.Robot(m.selected); !ok {
			m.selected = noRobot
		}
		m.startCounters()
		return m, m.loop.kick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Dashboard) handleKey(msg tea.KeyMsg) (Dashboard, tea.Cmd) {
	robots := m.opts.Fixtures.Robots
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(robots)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(robots) {
			id := robots[m.cursor].ID
			if m.selected == id {
				m.selected = noRobot
			} else {
				m.selected = id
			}
		}
	case key.Matches(msg, m.keys.Theme):
		m.SetTheme(NextTheme(m.styles.Theme))
	case key.Matches(msg, m.keys.Back):
		m.Close()
		return m, func() tea.Msg { return navigateMsg{to: routeLanding} }
	}
	return m, nil
}

// Close cancels any running counters.
func (m Dashboard) Close() { m.counts.cancel() }

func (m *Dashboard) SetTheme(t Theme) {
	m.opts.Theme = t
	m.styles = NewStyles(t)
	m.help.Styles = m.styles.HelpStyles()
}

func (m Dashboard) Theme() Theme { return m.styles.Theme }

// Value returns the displayed value of a KPI counter.
func (m Dashboard) Value(key string) float64 { return m.counts.value(key) }

// Settled reports whether every counter has finished.
func (m Dashboard) Settled() bool { return m.counts.settled() }

// Selected returns the robot whose detail row is open.
func (m Dashboard) Selected() (int, bool) { return m.selected, m.selected != noRobot }

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m Dashboard) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(m.viewHeader() + "\n\n")
	b.WriteString(m.viewKPIs() + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewCoverage(), m.viewMaintenance()) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewTrend(), m.viewWater()) + "\n")
	b.WriteString(m.viewArchitecture() + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewAlerts(), m.viewFleet()) + "\n")
	b.WriteString(m.viewHighlights() + "\n\n")
	b.WriteString(s.Separator(min(m.width, 80)) + "\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Dashboard) viewHeader() string {
	s := m.styles
	sum := m.opts.Fixtures.Summary
	title := s.Accent.Render("◆") + " " + s.Title.Render("NeuroSpark") + s.Subtle.Render("  Fleet Operations")
	pills := strings.Join([]string{
		s.Status(fleet.StatusActive).Render(fmt.Sprintf("%d Active", sum.Active)),
		s.Status(fleet.StatusCharging).Render(fmt.Sprintf("%d Charging", sum.Charging)),
		s.Status(fleet.StatusIdle).Render(fmt.Sprintf("%d Idle", sum.Idle)),
	}, "  ")
	status := s.SparkHigh.Render("● "+sum.SystemStatus) +
		s.Subtle.Render(fmt.Sprintf("  %d units online, %d issue(s) detected", sum.OnlineUnits, sum.IssuesDetected))
	return title + "\n" + pills + "\n" + status
}

func (m Dashboard) card(k fleet.KPI, width int) string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Subtle.Render(strings.ToUpper(k.Title)) + "\n")
	b.WriteString(s.Value.Render(formatNumber(m.counts.value(k.Key))+k.Suffix) + "\n")
	if k.CaptionValue != 0 {
		caption := "+" + formatNumber(m.counts.value(k.Key+".caption")) + k.CaptionSuffix
		b.WriteString(s.SparkHigh.Render(caption) + " " + s.Subtle.Render(k.Caption) + "\n")
	} else if k.Caption != "" {
		b.WriteString(s.Subtle.Render(k.Caption) + "\n")
	}
	if k.Note != "" {
		b.WriteString(s.Subtle.Render(k.Note))
	}
	return s.Panel.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Dashboard) viewKPIs() string {
	cards := make([]string, 0, len(headlineKPIs))
	for _, name := range headlineKPIs {
		if k, ok := m.opts.Fixtures.KPI(name); ok {
			cards = append(cards, m.card(k, 28))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Dashboard) viewCoverage() string {
	s := m.styles
	fx := m.opts.Fixtures
	var b strings.Builder
	b.WriteString(s.Heading.Render("COVERAGE & HEALTH") + "\n")

	if k, ok := fx.KPI(coverageKey); ok {
		v := m.counts.value(coverageKey)
		b.WriteString(s.Label.Render(k.Title) + s.Value.Render(formatNumber(v)+k.Suffix) + "\n")
		b.WriteString(m.coverage.ViewAs(v/100) + "\n")
		if k.Note != "" {
			b.WriteString(s.Subtle.Render(k.Note) + "\n")
		}
	}
	for _, share := range fx.Coverage {
		b.WriteString(s.Label.Render(share.Name) + s.Text.Render(formatNumber(share.Value)+"%") + "\n")
	}

	avg := fx.AverageBattery()
	if k, ok := fx.KPI(batteryKey); ok {
		avg = m.counts.value(batteryKey)
		b.WriteString("\n" + s.Label.Render(k.Title) + s.Value.Render(formatNumber(avg)+k.Suffix) + "\n")
	} else {
		b.WriteString("\n" + s.Label.Render("Average Battery") + s.Value.Render(fmt.Sprintf("%.1f%%", avg)) + "\n")
	}
	b.WriteString(m.battery.ViewAs(avg / 100))

	return s.Panel.Width(42).Render(b.String())
}

func (m Dashboard) viewMaintenance() string {
	s := m.styles
	mt := m.opts.Fixtures.Maintenance
	var b strings.Builder
	b.WriteString(s.Heading.Render("NEXT MAINTENANCE") + "\n")
	b.WriteString(s.SparkMid.Render("△ "+mt.Unit) + "\n")
	b.WriteString(s.Text.Width(40).Render(mt.Detail) + "\n")
	b.WriteString(s.Label.Render("Est. downtime") + s.Value.Render(mt.Downtime))
	return s.Panel.Width(46).Render(b.String())
}

func (m Dashboard) viewTrend() string {
	s := m.styles
	trend := m.opts.Fixtures.EfficiencyTrend
	var b strings.Builder
	b.WriteString(s.Heading.Render("EFFICIENCY TREND (24H)") + "\n")

	if len(trend) > 1 {
		values := make([]float64, len(trend))
		for i, p := range trend {
			values[i] = p.Value
		}
		chart := asciigraph.Plot(values,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Precision(1),
			asciigraph.Caption(trend[0].Label+" → "+trend[len(trend)-1].Label),
		)
		b.WriteString(s.Accent.Render(chart) + "\n")
		b.WriteString(s.Sparkline(values, len(values)))
	} else {
		b.WriteString(s.Subtle.Render("no data"))
	}

	return s.Panel.Width(50).Render(b.String())
}

func (m Dashboard) viewWater() string {
	s := m.styles
	cycles := m.opts.Fixtures.WaterUsage
	var b strings.Builder
	b.WriteString(s.Heading.Render("WATER USAGE (LITERS)") + "\n")

	peak := 0.0
	for _, c := range cycles {
		peak = max(peak, c.Liters)
	}
	for _, c := range cycles {
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			s.Text.Width(8).Render(c.Cycle),
			s.Bar(c.Liters, peak, 16),
			s.Value.Width(4).Render(formatNumber(c.Liters)),
			s.Subtle.Render(c.Time)))
	}

	return s.Panel.Width(38).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Dashboard) viewArchitecture() string {
	s := m.styles
	stages := make([]string, len(m.opts.Fixtures.Architecture))
	for i, st := range m.opts.Fixtures.Architecture {
		stages[i] = s.Accent.Render("[" + st + "]")
	}
	flow := strings.Join(stages, s.Subtle.Render(" → "))
	return s.Panel.Width(90).Render(s.Heading.Render("SYSTEM ARCHITECTURE") + "\n" + flow + "\n" +
		s.Subtle.Width(86).Render("End-to-end flow: "+architectureNote))
}

func (m Dashboard) viewAlerts() string {
	s := m.styles
	alerts := m.opts.Fixtures.AlertsBySeverity()
	var b strings.Builder
	b.WriteString(s.Heading.Render(fmt.Sprintf("ACTIVE ALERTS (%d)", len(alerts))) + "\n")
	for _, a := range alerts {
		line := SeverityIcon(a.Severity) + " " + a.Message + "\n" + a.Age
		b.WriteString(s.Severity(a.Severity).Width(44).Render(line) + "\n")
	}
	return s.Panel.Width(50).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Dashboard) viewFleet() string {
	s := m.styles
	robots := m.opts.Fixtures.Robots
	var b strings.Builder
	b.WriteString(s.Heading.Render(fmt.Sprintf("FLEET UNITS (%d)", len(robots))) + "\n")
	for i, r := range robots {
		cursor := "  "
		if i == m.cursor {
			cursor = s.Selected.Render("▸ ")
		}
		line := fmt.Sprintf("%s Unit #%-3d %-8s %3d%%  %d cycles", StatusIcon(r.Status), r.ID, r.Location, r.Battery, r.Cycles)
		if r.ID == m.selected {
			line += fmt.Sprintf("\nStatus: %s\nBattery: %d%% | Cycles today: %d", r.Status, r.Battery, r.Cycles)
		}
		b.WriteString(cursor + s.Status(r.Status).Render(line) + "\n")
	}
	return s.Panel.Width(46).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Dashboard) viewHighlights() string {
	s := m.styles
	cards := make([]string, len(m.opts.Fixtures.Highlights))
	for i, h := range m.opts.Fixtures.Highlights {
		cards[i] = s.Panel.Width(30).Render(s.Subtle.Render(strings.ToUpper(h.Title)) + "\n" +
			s.Title.Render(h.Value) + "\n" + s.Subtle.Render(h.Caption))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
