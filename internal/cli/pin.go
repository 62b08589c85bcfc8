package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitflow/internal/keyring"
)

type PinCmd struct {
	Set   PinSetCmd   `cmd:"" help:"Set or replace the admin PIN."`
	Clear PinClearCmd `cmd:"" help:"Remove the admin PIN."`
}

type PinSetCmd struct{}

func (c *PinSetCmd) Run(ctx *Context) error {
	// Replacing an existing PIN requires the current one
	if err := ctx.RequirePIN(); err != nil {
		return err
	}

	var pin, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New PIN").
				EchoMode(huh.EchoModePassword).
				Value(&pin).
				Validate(func(s string) error {
					if len(s) < 4 {
						return fmt.Errorf("PIN must be at least 4 characters")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm PIN").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if pin != confirm {
		return fmt.Errorf("PINs do not match")
	}

	if err := keyring.SetPIN(pin); err != nil {
		return err
	}

	fmt.Println("Admin PIN set. Sync configuration and data wipe now require it.")
	return nil
}

type PinClearCmd struct{}

func (c *PinClearCmd) Run(ctx *Context) error {
	if err := ctx.RequirePIN(); err != nil {
		return err
	}

	if err := keyring.ClearPIN(); err != nil {
		if errors.Is(err, keyring.ErrNotSet) {
			fmt.Println("No PIN is set.")
			return nil
		}
		return err
	}

	fmt.Println("Admin PIN removed.")
	return nil
}
