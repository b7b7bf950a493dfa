package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B7EF5")).
			Bold(true)

	xpBarFilledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8B7EF5"))

	xpBarEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2A2A3F"))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A962"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F57272")).
			Bold(true)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A8")).
			Italic(true)
)
