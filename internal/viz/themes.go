package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#93c5fd"), // Sky
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#020617"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#64748b"),
		Border:     lipgloss.Color("#1e293b"),
		Success:    lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Error:      lipgloss.Color("#f87171"),
	}

	// solar is the amber of the landing hero.
	ThemeSolar = Theme{
		Name:       "solar",
		Primary:    lipgloss.Color("#fbbf24"),
		Secondary:  lipgloss.Color("#f59e0b"),
		Accent:     lipgloss.Color("#fde68a"),
		Background: lipgloss.Color("#1c1204"),
		Text:       lipgloss.Color("#fef3c7"),
		Muted:      lipgloss.Color("#a8845a"),
		Border:     lipgloss.Color("#3f2d12"),
		Success:    lipgloss.Color("#a3e635"),
		Warning:    lipgloss.Color("#fb923c"),
		Error:      lipgloss.Color("#ef4444"),
	}

	ThemePanel = Theme{
		Name:       "panel",
		Primary:    lipgloss.Color("#60a5fa"), // Cell blue
		Secondary:  lipgloss.Color("#cbd5e1"), // Frame silver
		Accent:     lipgloss.Color("#38bdf8"),
		Background: lipgloss.Color("#0b1324"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#7b8aa3"),
		Border:     lipgloss.Color("#334155"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Error:      lipgloss.Color("#f43f5e"),
	}

	// console keeps to greys so status colors carry the signal.
	ThemeConsole = Theme{
		Name:       "console",
		Primary:    lipgloss.Color("#f1f5f9"),
		Secondary:  lipgloss.Color("#a1a1aa"),
		Accent:     lipgloss.Color("#22d3ee"),
		Background: lipgloss.Color("#09090b"),
		Text:       lipgloss.Color("#e4e4e7"),
		Muted:      lipgloss.Color("#71717a"),
		Border:     lipgloss.Color("#3f3f46"),
		Success:    lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Error:      lipgloss.Color("#f87171"),
	}

	ThemeDawn = Theme{
		Name:       "dawn",
		Primary:    lipgloss.Color("#fb7185"), // First light
		Secondary:  lipgloss.Color("#fdba74"),
		Accent:     lipgloss.Color("#c4b5fd"),
		Background: lipgloss.Color("#1e1326"),
		Text:       lipgloss.Color("#ffe4e6"),
		Muted:      lipgloss.Color("#9d7c93"),
		Border:     lipgloss.Color("#44304f"),
		Success:    lipgloss.Color("#86efac"),
		Warning:    lipgloss.Color("#fcd34d"),
		Error:      lipgloss.Color("#e11d48"),
	}

	// Default theme
	CurrentTheme = ThemeOcean

	// All available themes
	Themes = []Theme{
		ThemeOcean,
		ThemeSolar,
		ThemePanel,
		ThemeConsole,
		ThemeDawn,
	}
)

// LookupTheme returns the theme with the given name.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeOcean
}

// SetTheme changes the current theme
func SetTheme(name string) error {
	t, ok := LookupTheme(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	CurrentTheme = t
	return nil
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
