package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitflow/internal/stats"
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	logs := ctx.Tracker.Logs()
	habits := ctx.Tracker.Habits()

	series := stats.WeeklySeries(logs, len(habits), time.Now())
	score := stats.WeeklyScore(series)

	fmt.Printf("Weekly consistency: %.0f%%\n\n", score)

	for _, day := range series {
		bar := strings.Repeat("#", int(day.Score/10))
		fmt.Printf("%s %s %-10s %d/%d\n", day.Weekday, day.Date, bar, day.Completed, day.Total)
	}

	return nil
}
