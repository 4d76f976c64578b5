package tui

import (
	"trygo/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for one picker session, built from
// a named theme palette.
type Styles struct {
	Title     lipgloss.Style
	SearchBox lipgloss.Style
	ListBox   lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Normal    lipgloss.Style
	Date      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for the named theme.
func NewStyles(theme string) Styles {
	palette := config.GetTheme(theme)

	title := lipgloss.Color(palette["title"])
	border := lipgloss.Color(palette["border"])
	selected := lipgloss.Color(palette["selected"])
	muted := lipgloss.Color(palette["muted"])
	date := lipgloss.Color(palette["date"])
	highlight := lipgloss.Color(palette["highlight"])
	status := lipgloss.Color(palette["status"])

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(title),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ListBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(selected).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(selected).
			Bold(true),
		Normal:    lipgloss.NewStyle(),
		Date:      lipgloss.NewStyle().Foreground(date),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Highlight: lipgloss.NewStyle().Foreground(highlight).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(status),
		Help:      lipgloss.NewStyle().Foreground(muted),
	}
}
