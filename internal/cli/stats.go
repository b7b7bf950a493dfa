package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/streak"
)

type StatsCmd struct {
	ID string `arg:"" optional:"" help:"Habit ID (all habits when omitted)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	now := time.Now()

	if c.ID != "" {
		h, err := ctx.Habits.Get(c.ID)
		if err != nil {
			return err
		}
		printStats(h, now)
		return nil
	}

	habits := ctx.Habits.All()
	if len(habits) == 0 {
		fmt.Println("No habits to report on.")
		return nil
	}
	for i, h := range habits {
		if i > 0 {
			fmt.Println()
		}
		printStats(h, now)
	}
	return nil
}

func printStats(h models.Habit, now time.Time) {
	fmt.Printf("%s  [%s]\n", h.Name, formatFrequency(h.Frequency))
	fmt.Printf("  Current streak:    %d\n", streak.CurrentStreak(h, now))
	fmt.Printf("  Best streak:       %d\n", streak.BestStreak(h))
	fmt.Printf("  Rate (7 days):     %d%%\n", streak.CompletionRate(h, 7, now))
	fmt.Printf("  Rate (30 days):    %d%%\n", streak.CompletionRate(h, 30, now))
	fmt.Printf("  Total completions: %d\n", streak.TotalCompletions(h))
}
