package cli

import (
	"context"
	"fmt"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	bg := context.Background()

	if err := ctx.Store.Init(bg); err != nil {
		return err
	}
	if err := ctx.Profile.Load(bg); err != nil {
		return err
	}

	fmt.Printf("Initialized habitkit storage at %s\n", ctx.Store.Path())
	return nil
}
