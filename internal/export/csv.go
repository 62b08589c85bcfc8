// Package export builds read-only projections of the tracked data for
// user download. Nothing here is persisted.
package export

import (
	"sort"
	"strconv"
	"strings"

	"github.com/julianstephens/habitflow/internal/models"
)

// CSV renders a row-per-day table: header row is "Date" followed by each
// current habit's display name, one row per logged day sorted ascending,
// each cell the recorded count for that habit on that day (0 if absent).
//
// Known limitation: habit names containing commas are not escaped; the
// output is a plain comma join, matching the exported format consumers
// already ingest.
func CSV(habits map[string]models.Habit, logs models.Logs) string {
	habitIDs := make([]string, 0, len(habits))
	for id := range habits {
		habitIDs = append(habitIDs, id)
	}
	sort.Strings(habitIDs)

	var b strings.Builder
	b.WriteString("Date")
	for _, id := range habitIDs {
		b.WriteString(",")
		b.WriteString(habits[id].Name)
	}
	b.WriteString("\n")

	days := make([]string, 0, len(logs))
	for key := range logs {
		days = append(days, key)
	}
	sort.Strings(days)

	for _, day := range days {
		b.WriteString(day)
		for _, id := range habitIDs {
			b.WriteString(",")
			count := 0.0
			if entry, ok := logs[day].Habits[id]; ok {
				count = entry.Count
			}
			b.WriteString(strconv.FormatFloat(count, 'f', -1, 64))
		}
		b.WriteString("\n")
	}

	return b.String()
}
