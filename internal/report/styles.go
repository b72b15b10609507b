package report

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
)

// Styles
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	failStyle = lipgloss.NewStyle().
			Foreground(colorError)
)

// painter applies the report styles, or nothing when color is off
type painter struct {
	color bool
}

func newPainter(color bool) painter {
	return painter{color: color}
}

func (p painter) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p painter) heading(s string) string { return p.render(headingStyle, s) }
func (p painter) ok(s string) string      { return p.render(okStyle, s) }
func (p painter) fail(s string) string    { return p.render(failStyle, s) }
