package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitflow/internal/export"
)

type ExportCmd struct {
	Output string `help:"Output file path." short:"o" default:"habit_data.csv"`
	Stdout bool   `help:"Write to stdout instead of a file."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	csv := export.CSV(ctx.Tracker.Habits(), ctx.Tracker.Logs())

	if c.Stdout {
		fmt.Print(csv)
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(csv), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("Exported habit data to %s\n", c.Output)
	return nil
}
