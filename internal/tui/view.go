package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewhitmore/habitkit/internal/constants"
)

const xpBarWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.habitList.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	p := m.profile.Profile()

	title := headerStyle.Render(fmt.Sprintf("%s %s — Level %d", p.AvatarEmoji, p.Name, p.Level))

	within := p.XP - (p.Level-1)*constants.XPPerLevel
	filled := 0
	if within > 0 {
		filled = within * xpBarWidth / constants.XPPerLevel
	}
	if filled > xpBarWidth {
		filled = xpBarWidth
	}
	bar := xpBarFilledStyle.Render(strings.Repeat("█", filled)) +
		xpBarEmptyStyle.Render(strings.Repeat("░", xpBarWidth-filled))
	xpLine := fmt.Sprintf("%s %d/%d XP", bar, within, constants.XPPerLevel)

	streakLine := streakStyle.Render(fmt.Sprintf("🔥 streak %d (best %d)", p.CurrentStreak, p.BestStreak))

	lines := []string{title, xpLine, streakLine}
	if m.quote.Content != "" {
		lines = append(lines, quoteStyle.Render(fmt.Sprintf("“%s” (%s)", m.quote.Content, m.quote.Author)))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and its entire history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
