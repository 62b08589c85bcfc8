package cli

import (
	"fmt"
	"sort"

	"github.com/julianstephens/habitflow/internal/utils"
)

type HistoryCmd struct {
	Days int `help:"Maximum number of days to show." default:"30"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	logs := ctx.Tracker.Logs()
	if len(logs) == 0 {
		fmt.Println("No history recorded yet.")
		return nil
	}

	habits := ctx.Tracker.Habits()

	// Newest first
	days := make([]string, 0, len(logs))
	for key := range logs {
		days = append(days, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	if len(days) > c.Days {
		days = days[:c.Days]
	}

	for _, day := range days {
		readable, err := utils.ReadableDate(day)
		if err != nil {
			readable = day
		}
		fmt.Printf("%s\n", readable)

		entries := logs[day].Habits
		ids := make([]string, 0, len(entries))
		for id := range entries {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			entry := entries[id]
			// Removed habits fall back to their raw id
			name := id
			if h, ok := habits[id]; ok {
				name = h.Name
			}
			marker := " "
			if entry.Count >= entry.Goal {
				marker = "x"
			}
			fmt.Printf("  [%s] %-20s %s/%s\n", marker, name, formatCount(entry.Count), formatCount(entry.Goal))
		}
		fmt.Println()
	}

	return nil
}
