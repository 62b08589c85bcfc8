package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitflow/internal/models"
	syncpkg "github.com/julianstephens/habitflow/internal/sync"
)

type SyncCmd struct {
	Now    SyncNowCmd    `cmd:"" help:"Push today's state to the configured endpoint." default:"1"`
	Config SyncConfigCmd `cmd:"" help:"Configure the spreadsheet endpoints."`
	Show   SyncShowCmd   `cmd:"" help:"Show the configured endpoints."`
}

type SyncNowCmd struct{}

func (c *SyncNowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	err := ctx.Dispatcher.SyncNow()
	switch {
	case errors.Is(err, syncpkg.ErrNotConfigured):
		fmt.Println("No sync endpoint configured. Set one with 'habitflow sync config'.")
		return nil
	case errors.Is(err, syncpkg.ErrSyncInFlight):
		fmt.Println("A sync is already in progress.")
		return nil
	case err != nil:
		return err
	}

	// Delivery is fire-and-forget; a dispatched push is the most we can
	// report.
	fmt.Println("Sync dispatched.")
	return nil
}

type SyncConfigCmd struct {
	SheetURL string `help:"Human-reference spreadsheet URL."`
	AppURL   string `help:"Push endpoint URL (web app)."`
}

func (c *SyncConfigCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequirePIN(); err != nil {
		return err
	}

	cfg := ctx.Tracker.SyncConfig()
	if c.SheetURL != "" {
		cfg.SheetURL = c.SheetURL
	}
	if c.AppURL != "" {
		cfg.AppURL = c.AppURL
	}

	if err := ctx.Tracker.SetSyncConfig(cfg); err != nil {
		return err
	}

	if cfg.Configured() {
		fmt.Println("Sync endpoints saved. Changes will sync automatically.")
	} else {
		fmt.Println("Sync endpoints saved. Set --app-url to enable pushing.")
	}
	return nil
}

type SyncShowCmd struct{}

func (c *SyncShowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	cfg := ctx.Tracker.SyncConfig()
	if cfg == (models.SyncConfig{}) {
		fmt.Println("Sync is not configured.")
		return nil
	}

	fmt.Printf("Sheet URL: %s\n", orUnset(cfg.SheetURL))
	fmt.Printf("App URL:   %s\n", orUnset(cfg.AppURL))
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
