package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/streak"
	"github.com/ewhitmore/habitkit/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-6)
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Color: models.DefaultColor}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habitlist.StarHabitMsg:
		_, _ = m.habits.ToggleStar(context.Background(), msg.ID)
		m.refresh()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

// toggleHabit runs the completion toggle plus the gamification effects: XP
// grant/revoke, completion counter, streak update. The steps persist
// independently, matching the CLI toggle path.
func (m *Model) toggleHabit(id string) {
	ctx := context.Background()
	now := time.Now()

	h, completed, err := m.habits.ToggleCompletion(ctx, id, now)
	if err != nil {
		return
	}

	if completed {
		_ = m.profile.AddXP(ctx, constants.XPPerHabit)
		_ = m.profile.IncrementTotalCompletions(ctx)
	} else {
		_ = m.profile.AddXP(ctx, -constants.XPPerHabit)
	}
	_ = m.profile.UpdateStreak(ctx, streak.CurrentStreak(h, now))

	m.refresh()
}

func (m *Model) refresh() {
	m.habitList.SetHabits(m.habits.All(), time.Now())
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.habits.Create(context.Background(), models.CreateHabitInput{
			Name:      m.habitForm.Name,
			Trigger:   m.habitForm.Trigger,
			Action:    m.habitForm.Action,
			Color:     m.habitForm.Color,
			Frequency: m.habitForm.Frequency,
		})
		if err == nil {
			m.refresh()
			m.state = StateList
		} else {
			// Stay in the form so the user can fix input or cancel with ESC.
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.state = StateList
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		_ = m.habits.Delete(context.Background(), m.habitToDeleteID)
		m.habitToDeleteID = ""
		m.refresh()
		m.state = StateList
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.state = StateList
	}
	return m, nil
}
