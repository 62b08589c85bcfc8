package cli

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/validation"
)

type ThemeCmd struct {
	Theme string `arg:"" optional:"" help:"Theme to set (light|dark). Omit to show the current theme."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if c.Theme == "" {
		theme, err := ctx.Store.GetTheme()
		if err != nil {
			return err
		}
		if theme == "" {
			theme = string(constants.ThemeLight)
		}
		fmt.Printf("Theme: %s\n", theme)
		return nil
	}

	if err := validation.ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ctx.Store.SaveTheme(c.Theme); err != nil {
		return err
	}

	fmt.Printf("Theme set to %s.\n", c.Theme)
	return nil
}
