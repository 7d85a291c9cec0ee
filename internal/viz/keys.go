package viz

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type dashboardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Theme  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
		Down:   key.NewBinding(key.WithKeys("j", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Back:   key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Theme, k.Back, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type landingKeys struct {
	Scroll    key.Binding
	Dashboard key.Binding
	Theme     key.Binding
	Quit      key.Binding
}

func newLandingKeys() landingKeys {
	return landingKeys{
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Dashboard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k landingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Dashboard, k.Theme, k.Quit}
}

func (k landingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHelp(s Styles) help.Model {
	h := help.New()
	h.Styles = s.HelpStyles()
	return h
}
