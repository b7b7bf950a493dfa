package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ewhitmore/habitkit/internal/habit"
	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/progress"
	"github.com/ewhitmore/habitkit/internal/quote"
	"github.com/ewhitmore/habitkit/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

// HabitFormModel backs the add-habit form.
type HabitFormModel struct {
	Name      string
	Trigger   string
	Action    string
	Color     models.ColorID
	Frequency []models.Weekday
}

type Model struct {
	habits  *habit.Registry
	profile *progress.Engine
	quote   quote.Quote

	state     SessionState
	keys      KeyMap
	help      help.Model
	habitList habitlist.Model

	form      *huh.Form
	habitForm *HabitFormModel

	habitToDeleteID string
	quitting        bool
	width           int
	height          int
}

func NewModel(habits *habit.Registry, profile *progress.Engine, q quote.Quote) Model {
	now := time.Now()
	return Model{
		habits:    habits,
		profile:   profile,
		quote:     q,
		state:     StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(habits.All(), now, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Quit, m.keys.Help}
	if m.state == StateList {
		keys = append(keys, m.habitList.HelpKeys()...)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.Quit, m.keys.Help}, m.habitList.HelpKeys()}
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	colorOptions := make([]huh.Option[models.ColorID], 0, len(models.HabitColors))
	for _, c := range models.HabitColors {
		colorOptions = append(colorOptions, huh.NewOption(c.Name, c.ID))
	}

	weekdayOptions := make([]huh.Option[models.Weekday], 0, len(models.AllWeekdays))
	for _, wd := range models.AllWeekdays {
		weekdayOptions = append(weekdayOptions, huh.NewOption(string(wd), wd))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("After I...").
				Description("The existing routine this habit anchors to").
				Value(&fm.Trigger).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("trigger cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("I will...").
				Description("The new behavior to perform").
				Value(&fm.Action).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("action cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.ColorID]().
				Title("Color").
				Options(colorOptions...).
				Value(&fm.Color),
			huh.NewMultiSelect[models.Weekday]().
				Title("Active Days").
				Options(weekdayOptions...).
				Value(&fm.Frequency).
				Validate(func(wds []models.Weekday) error {
					if len(wds) == 0 {
						return fmt.Errorf("select at least one weekday")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
