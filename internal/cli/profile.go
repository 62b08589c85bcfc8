package cli

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/validation"
)

type ProfileCmd struct {
	Set  ProfileSetCmd  `cmd:"" help:"Set the user profile."`
	Show ProfileShowCmd `cmd:"" help:"Show the user profile."`
}

type ProfileSetCmd struct {
	Name  string `arg:"" help:"Display name."`
	Email string `help:"Email address (optional, used only for sync)." default:""`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	profile := models.UserProfile{Name: c.Name, Email: c.Email}
	if err := validation.ValidateProfile(profile); err != nil {
		return err
	}

	if err := ctx.Tracker.SetProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Profile saved. Hello, %s!\n", profile.Name)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	profile := ctx.Tracker.Profile()
	if profile.Name == "" {
		fmt.Println("No profile set. Run 'habitflow profile set <name>'.")
		return nil
	}

	fmt.Printf("Name:  %s\n", profile.Name)
	fmt.Printf("Email: %s\n", orUnset(profile.Email))
	return nil
}
