package cli

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	logs := ctx.Tracker.Logs()
	habits := ctx.Tracker.Habits()
	today := ctx.Tracker.TodayKey()

	fmt.Printf("Current streak: %d days\n", stats.CurrentStreak(logs, today))
	fmt.Printf("Best streak:    %d days\n", stats.LongestStreak(logs, today))
	fmt.Printf("Perfect days:   %d\n", stats.PerfectDays(logs))

	if len(habits) > 0 {
		fmt.Println("\nDaily averages:")
		for _, h := range sortedHabits(habits) {
			avg := stats.HabitAverage(logs, h.ID)
			fmt.Printf("  %-20s %.1f %s/day\n", h.Name, avg, h.Unit)
		}
	}

	return nil
}
