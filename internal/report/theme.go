package report

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	hintStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	okStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(Accent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

// swatch renders a small block in the given hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}
