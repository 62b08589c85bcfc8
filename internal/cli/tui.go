package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	// A long-lived session holds the lockfile so a second instance (or a
	// one-shot command racing a sync) can be detected by doctor.
	if pid, held := lockfileHolder(ctx.Store.GetConfigPath()); held {
		return fmt.Errorf("another habitflow session is running (pid %d)", pid)
	}
	if err := acquireLockfile(ctx.Store.GetConfigPath()); err != nil {
		return fmt.Errorf("failed to acquire session lock: %w", err)
	}
	defer releaseLockfile(ctx.Store.GetConfigPath())

	theme := constants.ThemeLight
	if stored, err := ctx.Store.GetTheme(); err == nil && stored != "" {
		theme = constants.Theme(stored)
	}

	model := tui.NewModel(ctx.Tracker, ctx.Dispatcher, theme)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	// Let a pending debounced sync go out before the process exits.
	ctx.Dispatcher.Flush()
	return nil
}
