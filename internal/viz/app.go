package viz

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// App routes between the landing page and the dashboard. Opening the
// dashboard always starts a fresh one so its counters replay.
type App struct {
	opts      Options
	route     route
	landing   Landing
	dashboard *Dashboard
	width     int
	height    int
}

func NewApp(opts Options) App {
	opts = opts.withDefaults()
	return App{
		opts:    opts,
		route:   routeLanding,
		landing: NewLanding(opts),
	}
}

// NewDashboardApp starts directly on the dashboard.
func NewDashboardApp(opts Options) App {
	m := NewApp(opts)
	d := NewDashboard(m.opts)
	m.dashboard = &d
	m.route = routeDashboard
	return m
}

func (m App) Init() tea.Cmd {
	if m.route == routeDashboard {
		return m.dashboard.Init()
	}
	return m.landing.Init()
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navigateMsg:
		return m.navigate(msg.to)
	case FixturesMsg:
		if msg.Fixtures == nil {
			return m, nil
		}
		slog.Info("viz: fixtures reloaded", "robots", len(msg.Fixtures.Robots), "alerts", len(msg.Fixtures.Alerts))
		m.opts.Fixtures = msg.Fixtures
		var cmds []tea.Cmd
		next, cmd := m.landing.Update(msg)
		m.landing = next.(Landing)
		cmds = append(cmds, cmd)
		if m.dashboard != nil {
			next, cmd := m.dashboard.Update(msg)
			d := next.(Dashboard)
			m.dashboard = &d
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		next, cmd := m.landing.Update(msg)
		m.landing = next.(Landing)
		cmds = append(cmds, cmd)
		if m.dashboard != nil {
			next, cmd := m.dashboard.Update(msg)
			d := next.(Dashboard)
			m.dashboard = &d
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case FrameMsg:
		// Frames belong to exactly one screen; offer them to both.
		if ok, cmd := m.landing.loop.handle(msg); ok {
			m.landing.refresh()
			return m, cmd
		}
		if m.dashboard != nil {
			if ok, cmd := m.dashboard.loop.handle(msg); ok {
				return m, cmd
			}
		}
		return m, nil
	}

	if m.route == routeDashboard && m.dashboard != nil {
		next, cmd := m.dashboard.Update(msg)
		d := next.(Dashboard)
		m.dashboard = &d
		m.opts.Theme = d.Theme()
		return m, cmd
	}
	next, cmd := m.landing.Update(msg)
	m.landing = next.(Landing)
	m.opts.Theme = m.landing.Theme()
	return m, cmd
}

func (m App) navigate(to route) (App, tea.Cmd) {
	slog.Debug("viz: navigate", "from", m.route, "to", to)
	switch to {
	case routeDashboard:
		if m.dashboard != nil {
			m.dashboard.Close()
		}
		d := NewDashboard(m.opts)
		if m.width > 0 {
			next, _ := d.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			d = next.(Dashboard)
		}
		m.dashboard = &d
		m.route = routeDashboard
		return m, d.Init()
	default:
		if m.dashboard != nil {
			m.dashboard.Close()
			m.dashboard = nil
		}
		m.landing.SetTheme(m.opts.Theme)
		m.landing.refresh()
		m.route = routeLanding
		return m, m.landing.loop.kick()
	}
}

// Route is the path of the current screen, "/" or "/dashboard".
func (m App) Route() string { return m.route.String() }

func (m App) View() string {
	if m.route == routeDashboard && m.dashboard != nil {
		return m.dashboard.View()
	}
	return m.landing.View()
}
