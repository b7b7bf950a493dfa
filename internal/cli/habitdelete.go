package cli

import (
	"context"
	"fmt"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	// Delete is idempotent; a missing id is not an error.
	if err := ctx.Habits.Delete(bg, c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %s (if it existed)\n", c.ID)
	return nil
}
