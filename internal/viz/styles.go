package viz

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/neurospark/internal/fleet"
)

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	Title     lipgloss.Style
	Heading   lipgloss.Style
	Subtle    lipgloss.Style
	Text      lipgloss.Style
	Panel     lipgloss.Style
	Value     lipgloss.Style
	Accent    lipgloss.Style
	Label     lipgloss.Style
	KeyHint   lipgloss.Style
	Selected  lipgloss.Style
	Nav       lipgloss.Style
	NavSolid  lipgloss.Style
	SparkHigh lipgloss.Style
	SparkMid  lipgloss.Style
	SparkLow  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme:   t,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(t.Text).MarginBottom(1),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		Text:    lipgloss.NewStyle().Foreground(t.Text),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Accent:   lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		KeyHint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Nav:      lipgloss.NewStyle().Foreground(t.Text).Padding(0, 2),
		NavSolid: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Background).
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		SparkHigh: lipgloss.NewStyle().Foreground(t.Success),
		SparkMid:  lipgloss.NewStyle().Foreground(t.Warning),
		SparkLow:  lipgloss.NewStyle().Foreground(t.Error),
	}
}

// HelpStyles draws the key help line: keys bold, descriptions in the key
// hint style.
func (s Styles) HelpStyles() help.Styles {
	return help.Styles{
		Ellipsis:       s.Subtle,
		ShortKey:       s.KeyHint.Bold(true),
		ShortDesc:      s.KeyHint,
		ShortSeparator: s.Subtle,
		FullKey:        s.KeyHint.Bold(true),
		FullDesc:       s.KeyHint,
		FullSeparator:  s.Subtle,
	}
}

// Status returns the style for a robot status. Unknown statuses get the
// muted style.
func (s Styles) Status(status fleet.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	switch status {
	case fleet.StatusActive:
		return base.Foreground(s.Theme.Success).BorderForeground(s.Theme.Success)
	case fleet.StatusCharging:
		return base.Foreground(s.Theme.Primary).BorderForeground(s.Theme.Primary)
	case fleet.StatusIdle:
		return base.Foreground(s.Theme.Muted).BorderForeground(s.Theme.Muted)
	default:
		return base.Foreground(s.Theme.Muted).BorderForeground(s.Theme.Border)
	}
}

// Severity returns the style for an alert severity. Unknown severities get
// the muted style.
func (s Styles) Severity(sev fleet.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	switch sev {
	case fleet.SeverityHigh:
		return base.Foreground(s.Theme.Error).BorderForeground(s.Theme.Error)
	case fleet.SeverityMedium:
		return base.Foreground(s.Theme.Warning).BorderForeground(s.Theme.Warning)
	case fleet.SeverityLow:
		return base.Foreground(s.Theme.Primary).BorderForeground(s.Theme.Primary)
	default:
		return base.Foreground(s.Theme.Muted).BorderForeground(s.Theme.Border)
	}
}

func SeverityIcon(sev fleet.Severity) string {
	switch sev {
	case fleet.SeverityHigh:
		return "⊗"
	case fleet.SeverityMedium:
		return "△"
	case fleet.SeverityLow:
		return "◌"
	}
	return "·"
}

func StatusIcon(status fleet.Status) string {
	switch status {
	case fleet.StatusActive:
		return "●"
	case fleet.StatusCharging:
		return "◐"
	case fleet.StatusIdle:
		return "○"
	}
	return "·"
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)

	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// Bar renders value/max as a horizontal bar of the given width.
func (s Styles) Bar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	ratio := value / max
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.Accent.Render(strings.Repeat("█", filled)) + s.Subtle.Render(strings.Repeat("░", width-filled))
}

// Sparkline renders a mini sparkline from values
func (s Styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(s.SparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(s.SparkMid.Render(c))
		default:
			result.WriteString(s.SparkLow.Render(c))
		}
	}

	return result.String()
}

// Separator draws a decorative rule.
func (s Styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = max(0, min(v, 255))
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
