package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ewhitmore/habitkit/internal/backup"
	"github.com/ewhitmore/habitkit/internal/cli"
	"github.com/ewhitmore/habitkit/internal/habit"
	"github.com/ewhitmore/habitkit/internal/kv"
	"github.com/ewhitmore/habitkit/internal/progress"
	"github.com/ewhitmore/habitkit/internal/quote"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/habitkit/habitkit.db"`

	Init    cli.InitCmd   `cmd:"" help:"Initialize habitkit storage."`
	Tui     cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Today   cli.TodayCmd  `cmd:"" help:"Show today's habits and progress."`
	Add     cli.AddCmd    `cmd:"" help:"Add a new habit."`
	Edit    cli.EditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete  cli.DeleteCmd `cmd:"" help:"Delete a habit and its history."`
	List    cli.ListCmd   `cmd:"" help:"List habits."`
	Toggle  cli.ToggleCmd `cmd:"" help:"Toggle today's completion for a habit."`
	Star    cli.StarCmd   `cmd:"" help:"Toggle a habit's star."`
	Stats   cli.StatsCmd  `cmd:"" help:"Show streak and completion statistics."`
	Profile struct {
		Show  cli.ProfileShowCmd  `cmd:"" help:"Show the user profile." default:"1"`
		Edit  cli.ProfileEditCmd  `cmd:"" help:"Edit profile name or avatar."`
		Reset cli.ProfileResetCmd `cmd:"" help:"Reset the profile to defaults."`
	} `cmd:"" help:"Manage the user profile."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a managed backup snapshot."`
		List    cli.BackupListCmd    `cmd:"" help:"List managed backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a managed backup."`
		Export  cli.BackupExportCmd  `cmd:"" help:"Export a snapshot to a file."`
		Import  cli.BackupImportCmd  `cmd:"" help:"Import a snapshot from a file."`
	} `cmd:"" help:"Back up and restore all state."`
	Debug cli.DebugCmd `cmd:"" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitkit"),
		kong.Description("Atomic habit tracker: trigger→action routines, streaks, and XP"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Storage backend follows the file extension.
	var store kv.Store
	if strings.HasSuffix(CLI.Config, ".json") {
		store = kv.NewJSONStore(CLI.Config)
	} else {
		store = kv.NewSQLiteStore(CLI.Config)
	}

	habits := habit.New(store)
	profile := progress.New(store)

	appCtx := &cli.Context{
		Store:   store,
		Habits:  habits,
		Profile: profile,
		Backup:  backup.NewSerializer(habits, profile, store),
		Quotes:  &quote.Client{},
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
