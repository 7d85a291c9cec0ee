package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/neurospark/internal/animate"
	"github.com/san-kum/neurospark/internal/fleet"
)

const (
	defaultRegion = "dashboard-metrics"

	// nav bar (two lines) plus the help line
	landingChrome = 3
)

// Landing is the scrolling marketing page. Its fleet metrics count up the
// first time their panel scrolls into view.
type Landing struct {
	opts    Options
	styles  Styles
	loop    *frameLoop
	keys    landingKeys
	help    help.Model
	watcher *viewportWatcher
	reveal  *animate.RevealHandle
	region  string

	viewport viewport.Model
	width    int
	height   int
}

func NewLanding(opts Options) Landing {
	opts = opts.withDefaults()
	loop := newFrameLoop(opts.Clock, opts.Animation.FrameInterval())
	region := opts.Fixtures.Landing.MetricsRegion
	if region == "" {
		region = defaultRegion
	}

	m := Landing{
		opts:     opts,
		styles:   NewStyles(opts.Theme),
		loop:     loop,
		keys:     newLandingKeys(),
		help:     newHelp(NewStyles(opts.Theme)),
		watcher:  newViewportWatcher(),
		region:   region,
		viewport: viewport.New(100, 30-landingChrome),
		width:    100,
		height:   30,
	}
	m.reveal = animate.Reveal(m.watcher, region, opts.Clock, loop.queue,
		opts.Animation.RevealDuration, opts.Fixtures.Landing.AnimatedMetrics(), nil)
	m.refresh()
	return m
}

func (m Landing) Init() tea.Cmd {
	return m.loop.kick()
}

// refresh re-renders the page into the viewport and re-evaluates which
// regions are on screen.
func (m *Landing) refresh() {
	content, metrics := m.renderPage()
	m.viewport.SetContent(content)
	m.watcher.place(m.region, metrics.start, metrics.end)
	m.watcher.update(m.viewport.YOffset, m.viewport.Height)
}

func (m Landing) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case FrameMsg:
		if ok, next := m.loop.handle(msg); ok {
			m.refresh()
			return m, next
		}
		return m, nil
	case FixturesMsg:
		m.opts.Fixtures = msg.Fixtures
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-landingChrome)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dashboard):
			return m, func() tea.Msg { return navigateMsg{to: routeDashboard} }
		case key.Matches(msg, m.keys.Theme):
			m.SetTheme(NextTheme(m.styles.Theme))
		default:
			m.viewport, cmd = m.viewport.Update(msg)
		}
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	}

	m.refresh()
	return m, tea.Batch(cmd, m.loop.kick())
}

// Close stops the metrics reveal.
func (m Landing) Close() { m.reveal.Cancel() }

func (m *Landing) SetTheme(t Theme) {
	m.opts.Theme = t
	m.styles = NewStyles(t)
	m.help.Styles = m.styles.HelpStyles()
}

func (m Landing) Theme() Theme { return m.styles.Theme }

// Scrolled reports whether the page has moved past the nav threshold.
func (m Landing) Scrolled() bool {
	return m.viewport.YOffset > m.opts.Animation.ScrollThreshold
}

// Metric returns the displayed value of a revealed metric.
func (m Landing) Metric(name string) float64 {
	return m.reveal.Last().Values[name]
}

func (m Landing) RevealStarted() bool { return m.reveal.Started() }

func (m Landing) View() string {
	return m.viewNav() + "\n" + m.viewport.View() + "\n" + m.help.View(m.keys)
}

func (m Landing) viewNav() string {
	s := m.styles
	links := s.Subtle.Render("Technology   Operations   Scale   ") + s.Accent.Render("[ Request Demo ]")
	brand := s.Title.Render("◆") + " " + s.Text.Bold(true).Render("NeuroSpark")
	gap := max(1, m.width-lipgloss.Width(brand)-lipgloss.Width(links)-4)
	bar := brand + strings.Repeat(" ", gap) + links

	if m.Scrolled() {
		return s.NavSolid.Width(m.width).Render(bar)
	}
	return s.Nav.Render(bar) + "\n"
}

// renderPage builds the full page and reports the lines occupied by the
// metrics panel.
func (m Landing) renderPage() (string, span) {
	s := m.styles
	l := m.opts.Fixtures.Landing
	w := max(40, min(m.width-4, 100))

	var b strings.Builder
	section := func(eyebrow, title string) {
		b.WriteString("\n" + s.Separator(w) + "\n\n")
		if eyebrow != "" {
			b.WriteString(s.Accent.Render(strings.ToUpper(eyebrow)) + "\n")
		}
		b.WriteString(s.Heading.Render(title) + "\n")
	}

	// hero
	b.WriteString("\n" + s.Subtle.Render("● Engineered for utility-scale operations") + "\n\n")
	b.WriteString(s.Text.Bold(true).Render("Infrastructure") + "\n")
	b.WriteString(GradientText("for the Next Generation", s.Theme.Primary, s.Theme.Accent) + "\n")
	b.WriteString(s.Text.Bold(true).Render("of Solar Performance") + "\n\n")
	b.WriteString(s.Subtle.Width(w).Render("Autonomous cleaning systems that maximize solar output through predictive "+
		"maintenance intelligence. Built for operators who demand operational excellence.") + "\n\n")
	b.WriteString(s.Accent.Render("[ Request Demo → ]") + "  " + s.Text.Render("[ View Technology ]") + "\n\n")
	b.WriteString(s.Subtle.Render("Designed for large-scale solar operators ● Built with industry engineering standards") + "\n")

	section("Ecosystem", "Designed for large-scale solar operators")
	b.WriteString(s.Subtle.Render("Engineering: built with industry standards at scale") + "\n")

	section("The challenge", "The economics of scale demand better solutions")
	b.WriteString(m.cards(l.Challenges, w) + "\n")

	section("Technology", "Autonomous Maintenance Infrastructure")
	b.WriteString(m.cards(l.Features, w) + "\n")

	section("Specifications", "Engineered for precision at scale")
	for _, sp := range l.Specs {
		b.WriteString(s.Label.Render(sp.Label) + s.Value.Render(sp.Value) + "  " + s.Subtle.Render(sp.Note) + "\n")
	}

	section("Operations", "Infrastructure intelligence at your command")
	start := strings.Count(b.String(), "\n")
	panel := m.metricsPanel(l.Metrics, w)
	b.WriteString(panel + "\n")
	metrics := span{start: start, end: start + lipgloss.Height(panel)}
	b.WriteString(m.cards(l.Operations, w) + "\n")

	section("Scale", "Built for utility-scale deployment")
	b.WriteString(m.cards(l.Scale, w) + "\n")
	for _, d := range l.Deployments {
		b.WriteString(s.Label.Width(24).Render(d.Label) + s.Bar(float64(d.Fill), 100, 20) + "  " + s.Subtle.Render(d.Units) + "\n")
	}
	b.WriteString("\n")
	for _, e := range l.Economics {
		b.WriteString(s.Label.Width(30).Render(e.Label) + s.Value.Render(e.Value) + "\n")
	}

	section("", "Powering the infrastructure behind clean energy")
	b.WriteString(s.Subtle.Width(w).Render("We're building the autonomous systems that solar operators depend on "+
		"for operational excellence. Partner with us to shape the future of renewable energy infrastructure.") + "\n\n")
	b.WriteString(s.Accent.Render("[ Partner With Us ]") + "  " + s.Text.Render("[ Download Investor Brief ]") + "\n\n")
	b.WriteString(s.Subtle.Render("© 2025 Solar Autonomy. Engineered for scale.   Contact  Privacy  Documentation") + "\n")

	return b.String(), metrics
}

func (m Landing) cards(cards []fleet.Card, width int) string {
	s := m.styles
	cardWidth := max(20, width/2-2)
	rendered := make([]string, len(cards))
	for i, c := range cards {
		var b strings.Builder
		if c.Metric != "" {
			b.WriteString(s.Title.Render(c.Metric) + "\n")
		}
		title := c.Title
		if c.Icon != "" {
			title = c.Icon + " " + title
		}
		b.WriteString(s.Text.Bold(true).Render(title) + "\n")
		b.WriteString(s.Subtle.Width(cardWidth - 4).Render(c.Text))
		rendered[i] = s.Panel.Width(cardWidth).Render(b.String())
	}

	var rows []string
	for i := 0; i < len(rendered); i += 2 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:min(i+2, len(rendered))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// metricsPanel is the region watched for visibility.
func (m Landing) metricsPanel(metrics []fleet.LandingMetric, width int) string {
	s := m.styles
	last := m.reveal.Last()

	cells := make([]string, len(metrics))
	for i, lm := range metrics {
		value := formatNumber(last.Values[lm.Name])
		cells[i] = s.Panel.Width(max(14, width/4-2)).Render(
			s.Subtle.Render(strings.ToUpper(lm.Label)) + "\n" + s.Value.Render(value) + s.Subtle.Render(lm.Unit))
	}

	header := s.Text.Bold(true).Render("Fleet Operations") + "   " + s.SparkHigh.Render("● All systems optimal")
	chart := s.Subtle.Render(fmt.Sprintf("Real-time analytics dashboard  %s", s.Bar(last.Progress, 1, 24)))
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, cells...), chart)
}
