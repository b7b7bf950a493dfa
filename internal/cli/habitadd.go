package cli

import (
	"context"
	"fmt"

	"github.com/ewhitmore/habitkit/internal/models"
)

type AddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Trigger   string `short:"t" help:"Existing routine the habit anchors to (\"After I...\")." required:""`
	Action    string `short:"a" help:"New behavior to perform (\"I will...\")." required:""`
	Color     string `short:"c" help:"Color tag (blue|purple|green|orange|pink|cyan|yellow|red)." default:"blue"`
	Frequency string `short:"f" help:"Comma-separated weekdays, or 'daily'." default:"daily"`
	Reminder  string `short:"r" help:"Optional reminder time (HH:MM)."`
	Notes     string `short:"n" help:"Optional notes."`
}

func (c *AddCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	frequency, err := parseWeekdays(c.Frequency)
	if err != nil {
		return err
	}

	h, err := ctx.Habits.Create(bg, models.CreateHabitInput{
		Name:         c.Name,
		Trigger:      c.Trigger,
		Action:       c.Action,
		Color:        models.ColorID(c.Color),
		Frequency:    frequency,
		ReminderTime: c.Reminder,
		Notes:        c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", h.Name, h.ID)
	fmt.Printf("  After I %s, I will %s — %s\n", h.Trigger, h.Action, formatFrequency(h.Frequency))
	return nil
}
