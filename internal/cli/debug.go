package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath     *DebugDBPathCmd     `cmd:"" help:"Show storage path."`
	DumpHabits *DebugDumpHabitsCmd `cmd:"" help:"Dump habit data as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpHabitsCmd struct{}

func (cmd *DebugDumpHabitsCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Load(bg); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(ctx.Habits.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habits: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
