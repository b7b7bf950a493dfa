package cli

import (
	"context"
	"fmt"

	"github.com/ewhitmore/habitkit/internal/models"
)

type EditCmd struct {
	ID        string `arg:"" help:"Habit ID."`
	Name      string `help:"New name."`
	Trigger   string `short:"t" help:"New trigger."`
	Action    string `short:"a" help:"New action."`
	Color     string `short:"c" help:"New color tag."`
	Frequency string `short:"f" help:"New comma-separated weekdays, or 'daily'."`
	Reminder  string `short:"r" help:"New reminder time (HH:MM)."`
	Notes     string `short:"n" help:"New notes."`
}

func (c *EditCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	var patch models.UpdateHabitInput
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Trigger != "" {
		patch.Trigger = &c.Trigger
	}
	if c.Action != "" {
		patch.Action = &c.Action
	}
	if c.Color != "" {
		color := models.ColorID(c.Color)
		patch.Color = &color
	}
	if c.Frequency != "" {
		frequency, err := parseWeekdays(c.Frequency)
		if err != nil {
			return err
		}
		patch.Frequency = &frequency
	}
	if c.Reminder != "" {
		patch.ReminderTime = &c.Reminder
	}
	if c.Notes != "" {
		patch.Notes = &c.Notes
	}

	h, err := ctx.Habits.Update(bg, c.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", h.Name)
	return nil
}
