package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ewhitmore/habitkit/internal/streak"
)

type TodayCmd struct {
	NoQuote bool `help:"Skip the daily quote."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	now := time.Now()
	profile := ctx.Profile.Profile()

	fmt.Printf("%s, %s %s\n", greeting(now), profile.Name, profile.AvatarEmoji)
	fmt.Printf("%s\n\n", now.Format("Monday, Jan 2"))

	if !c.NoQuote {
		q := ctx.Quotes.Daily(bg)
		fmt.Printf("“%s” — %s\n\n", q.Content, q.Author)
	}

	habits := ctx.Habits.TodayHabits(now)
	if len(habits) == 0 {
		fmt.Println("Nothing scheduled today.")
		return nil
	}

	for _, h := range habits {
		mark := "○"
		if streak.IsCompletedToday(h, now) {
			mark = "✓"
		}
		fmt.Printf("%s %s — streak %d\n", mark, h.Name, streak.CurrentStreak(h, now))
	}

	fmt.Printf("\n%d of %d completed today\n",
		ctx.Habits.CompletedTodayCount(now), ctx.Habits.ActiveTodayCount(now))
	return nil
}
