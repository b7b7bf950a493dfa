package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/streak"
)

type ToggleCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

// Run toggles today's completion and then applies the gamification effects.
// The registry write and the profile writes are separate persistence steps
// with no transaction between them; an interruption in the middle leaves XP
// out of step with completion state until the next toggle.
func (c *ToggleCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	now := time.Now()
	h, completed, err := ctx.Habits.ToggleCompletion(bg, c.ID, now)
	if err != nil {
		return err
	}

	if completed {
		if err := ctx.Profile.AddXP(bg, constants.XPPerHabit); err != nil {
			return err
		}
		if err := ctx.Profile.IncrementTotalCompletions(bg); err != nil {
			return err
		}
		fmt.Printf("✓ %s completed (+%d XP)\n", h.Name, constants.XPPerHabit)
	} else {
		if err := ctx.Profile.AddXP(bg, -constants.XPPerHabit); err != nil {
			return err
		}
		fmt.Printf("○ %s unmarked (-%d XP)\n", h.Name, constants.XPPerHabit)
	}

	if err := ctx.Profile.UpdateStreak(bg, streak.CurrentStreak(h, now)); err != nil {
		return err
	}

	profile := ctx.Profile.Profile()
	fmt.Printf("Level %d — %d/%d XP\n", profile.Level, profile.XP, ctx.Profile.RequiredXP())
	return nil
}

type StarCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *StarCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	h, err := ctx.Habits.ToggleStar(bg, c.ID)
	if err != nil {
		return err
	}

	if h.IsStarred {
		fmt.Printf("★ Starred %s\n", h.Name)
	} else {
		fmt.Printf("Unstarred %s\n", h.Name)
	}
	return nil
}
