package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Reset today's progress? This deletes today's log for every habit.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.ResetToday(); err != nil {
		return err
	}

	fmt.Println("Today's progress has been reset.")
	ctx.Dispatcher.Flush()
	return nil
}

type WipeCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *WipeCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequirePIN(); err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Erase ALL habit data, history, profile, and sync settings?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.ClearAll(); err != nil {
		return err
	}

	fmt.Println("All data erased. Default habits restored.")
	return nil
}
