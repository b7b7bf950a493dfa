// Package habitlist renders the scrollable habit list for the TUI dashboard.
package habitlist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/streak"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type StarHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type Item struct {
	Habit  models.Habit
	Today  time.Time
	Streak int
}

// colorStyle maps a habit palette color to a lipgloss foreground style.
func colorStyle(id models.ColorID) lipgloss.Style {
	c, ok := models.ColorByID(id)
	if !ok {
		c, _ = models.ColorByID(models.DefaultColor)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex))
}

func (i Item) Title() string {
	title := colorStyle(i.Habit.Color).Render(i.Habit.Name)
	if streak.IsCompletedToday(i.Habit, i.Today) {
		title = "✓ " + title
	} else {
		title = "○ " + title
	}
	if i.Habit.IsStarred {
		title += " ★"
	}
	return title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("After I %s, I will %s", i.Habit.Trigger, i.Habit.Action)
	if i.Streak > 0 {
		desc += fmt.Sprintf(" · 🔥 %d", i.Streak)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Star   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, today time.Time, width, height int) Model {
	l := list.New(buildItems(habits, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func buildItems(habits []models.Habit, today time.Time) []list.Item {
	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		items = append(items, Item{
			Habit:  h,
			Today:  today,
			Streak: streak.CurrentStreak(h, today),
		})
	}
	return items
}

// SetHabits refreshes the list contents, keeping the cursor in place.
func (m *Model) SetHabits(habits []models.Habit, today time.Time) {
	selected := m.list.Index()
	m.list.SetItems(buildItems(habits, today))
	if selected >= len(habits) && len(habits) > 0 {
		selected = len(habits) - 1
	}
	m.list.Select(selected)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the habit under the cursor, if any.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(keyMsg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(keyMsg, m.keys.Toggle):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: h.ID} }
			}
		case key.Matches(keyMsg, m.keys.Star):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return StarHabitMsg{ID: h.ID} }
			}
		case key.Matches(keyMsg, m.keys.Delete):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: h.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m Model) HelpKeys() []key.Binding {
	return []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Star, m.keys.Delete}
}
