package cli

import (
	"context"
	"fmt"

	"github.com/ewhitmore/habitkit/internal/progress"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	p := ctx.Profile.Profile()
	fmt.Printf("%s %s\n", p.AvatarEmoji, p.Name)
	fmt.Printf("  Level:            %d\n", p.Level)
	fmt.Printf("  XP:               %d (%d/%d to next level)\n",
		p.XP, ctx.Profile.ProgressWithinLevel(), ctx.Profile.RequiredXP())
	fmt.Printf("  Current streak:   %d\n", p.CurrentStreak)
	fmt.Printf("  Best streak:      %d\n", p.BestStreak)
	fmt.Printf("  Total completed:  %d\n", p.TotalHabitsCompleted)
	fmt.Printf("  Joined:           %s\n", p.JoinedDate.Format("Jan 2, 2006"))
	return nil
}

type ProfileEditCmd struct {
	Name   string `help:"New display name."`
	Avatar string `help:"New avatar emoji."`
}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	var patch progress.ProfilePatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Avatar != "" {
		patch.AvatarEmoji = &c.Avatar
	}

	if err := ctx.Profile.UpdateProfile(bg, patch); err != nil {
		return err
	}

	p := ctx.Profile.Profile()
	fmt.Printf("Profile updated: %s %s\n", p.AvatarEmoji, p.Name)
	return nil
}

type ProfileResetCmd struct{}

func (c *ProfileResetCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	if err := ctx.Profile.Reset(bg); err != nil {
		return err
	}

	fmt.Println("Profile reset to defaults.")
	return nil
}
