package cli

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	today := ctx.Tracker.TodayKey()
	readable, err := utils.ReadableDate(today)
	if err != nil {
		readable = today
	}
	fmt.Printf("%s\n\n", readable)

	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	done := 0
	for _, h := range sortedHabits(habits) {
		marker := "[ ]"
		if h.Count >= h.Goal {
			marker = "[x]"
			done++
		}
		fmt.Printf("%s %-20s %s/%s %s\n", marker, h.Name, formatCount(h.Count), formatCount(h.Goal), h.Unit)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}
