package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ewhitmore/habitkit/internal/streak"
)

type ListCmd struct {
	Starred bool `short:"s" help:"Show only starred habits."`
	Today   bool `short:"t" help:"Show only habits scheduled today."`
}

func (c *ListCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	now := time.Now()
	habits := ctx.Habits.All()
	if c.Starred {
		habits = ctx.Habits.Starred()
	} else if c.Today {
		habits = ctx.Habits.TodayHabits(now)
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitkit add'.")
		return nil
	}

	for _, h := range habits {
		mark := "○"
		if streak.IsCompletedToday(h, now) {
			mark = "✓"
		}
		star := " "
		if h.IsStarred {
			star = "★"
		}
		fmt.Printf("%s %s %s  [%s]  %s\n", mark, star, h.Name, formatFrequency(h.Frequency), h.ID)
		fmt.Printf("    After I %s, I will %s\n", h.Trigger, h.Action)
	}

	return nil
}
