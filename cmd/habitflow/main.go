package main

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/storage"
	"github.com/julianstephens/habitflow/internal/sync"
	"github.com/julianstephens/habitflow/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/habitflow/habitflow.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitflow storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive tracker." default:"1"`
	Track   cli.TrackCmd   `cmd:"" help:"Increment a habit by its step."`
	Untrack cli.UntrackCmd `cmd:"" help:"Decrement a habit by its step."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's progress."`
	History cli.HistoryCmd `cmd:"" help:"Show recorded days."`
	Week    cli.WeekCmd    `cmd:"" help:"Show the trailing week's completion."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streaks and averages."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Reset   cli.ResetCmd   `cmd:"" help:"Reset today's counts to zero."`
	Wipe    cli.WipeCmd    `cmd:"" help:"Erase all data (keeps device id and theme)."`
	Sync    cli.SyncCmd    `cmd:"" help:"Push state to a spreadsheet endpoint."`
	Export  cli.ExportCmd  `cmd:"" help:"Export history as CSV."`
	Profile cli.ProfileCmd `cmd:"" help:"Manage the user profile."`
	Theme   cli.ThemeCmd   `cmd:"" help:"Show or set the color theme."`
	Pin     cli.PinCmd     `cmd:"" help:"Manage the admin PIN."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage backups."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Check storage health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first habit tracker with one-way spreadsheet sync"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	// Storage backend follows the file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	trk := tracker.New(store)
	dispatcher := sync.New(trk, sync.WithClient(&http.Client{Timeout: constants.SyncTimeout}))

	// A mutation arms the debounced auto-sync; a wipe disarms it so the
	// cleared state is not pushed out.
	trk.OnChange(dispatcher.NotifyChange)
	trk.OnClear(dispatcher.Cancel)

	appCtx := &cli.Context{
		Store:      store,
		Tracker:    trk,
		Dispatcher: dispatcher,
	}

	errors.Fatal(ctx.Run(appCtx))
}
