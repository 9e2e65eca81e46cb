// Package formatter renders CLI output with a consistent palette.
package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/calebmoss/deckgen/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorGold   = lipgloss.Color("#ffd700")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen   = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow  = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed     = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue    = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleKeyTerm = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for a project status badge.
func StatusStyle(status domain.ProjectStatus) lipgloss.Style {
	switch status {
	case domain.ProjectInitialized:
		return StyleDim
	case domain.ProjectOutlined:
		return StyleBlue
	case domain.ProjectGenerated:
		return StyleYellow
	case domain.ProjectExported:
		return StyleGreen
	default:
		return StyleFg
	}
}

// StatusBadge renders a colored status indicator such as "● generated".
func StatusBadge(status domain.ProjectStatus) string {
	return StatusStyle(status).Render("● " + string(status))
}
