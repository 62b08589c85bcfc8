// Package stats derives streaks, perfect-day counts, weekly completion
// series, and per-habit averages from the daily logs. Everything here is
// a pure function: no state, no mutation.
package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/utils"
)

// DayScore is one day of the trailing-week completion series.
type DayScore struct {
	Date      string  `json:"date"`
	Weekday   string  `json:"weekday"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Score     float64 `json:"score"`
}

// DayComplete reports whether a day is complete: it has at least one
// habit entry and every entry met or exceeded its goal. A day with zero
// entries is never complete, even though the predicate would be vacuously
// true over an empty set.
func DayComplete(day models.DailyLog) bool {
	if len(day.Habits) == 0 {
		return false
	}
	for _, entry := range day.Habits {
		if entry.Count < entry.Goal {
			return false
		}
	}
	return true
}

// CurrentStreak walks backward from today counting consecutive complete
// days. Today is still in progress: a missing or incomplete log for today
// does not break the streak, it just does not count toward it. Any day
// strictly before today that is not complete ends the walk.
func CurrentStreak(logs models.Logs, today string) int {
	day, err := utils.ParseDayKey(today)
	if err != nil {
		return 0
	}

	streak := 0
	for {
		key := utils.DayKey(day)
		if log, ok := logs[key]; ok && DayComplete(log) {
			streak++
		} else if key != today {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans all recorded days in ascending order, tracking the
// longest run of consecutive complete days. The result is never less
// than the current streak, so an active streak is reflected before it
// has been surpassed historically.
func LongestStreak(logs models.Logs, today string) int {
	keys := make([]string, 0, len(logs))
	for key := range logs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	longest := 0
	run := 0
	for _, key := range keys {
		if DayComplete(logs[key]) {
			run++
		} else {
			run = 0
		}
		if run > longest {
			longest = run
		}
	}

	if current := CurrentStreak(logs, today); current > longest {
		longest = current
	}
	return longest
}

// PerfectDays counts the days where the completeness predicate holds.
func PerfectDays(logs models.Logs) int {
	count := 0
	for _, day := range logs {
		if DayComplete(day) {
			count++
		}
	}
	return count
}

// HabitAverage returns the mean recorded count for a habit across all
// logged days. Days that do not mention the habit contribute 0 to the
// numerator but still count in the denominator.
func HabitAverage(logs models.Logs, habitID string) float64 {
	if len(logs) == 0 {
		return 0
	}

	total := 0.0
	for _, day := range logs {
		if entry, ok := day.Habits[habitID]; ok {
			total += entry.Count
		}
	}
	return total / float64(len(logs))
}

// WeeklySeries produces one DayScore for each of the trailing 7 calendar
// days ending at today. Completed counts entries that met their goal;
// Total is the number of habit types in the current registry; Score is
// the per-day completion percentage.
func WeeklySeries(logs models.Logs, habitCount int, today time.Time) []DayScore {
	series := make([]DayScore, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := utils.DayKey(day)

		completed := 0
		if log, ok := logs[key]; ok {
			for _, entry := range log.Habits {
				if entry.Count >= entry.Goal {
					completed++
				}
			}
		}

		score := 0.0
		if habitCount > 0 {
			score = float64(completed) / float64(habitCount) * 100
		}

		series = append(series, DayScore{
			Date:      key,
			Weekday:   day.Format("Mon"),
			Completed: completed,
			Total:     habitCount,
			Score:     score,
		})
	}
	return series
}

// WeeklyScore aggregates a series into a single percentage: habits
// completed across the window over total possible, 0 when the
// denominator is 0.
func WeeklyScore(series []DayScore) float64 {
	completed := 0
	possible := 0
	for _, day := range series {
		completed += day.Completed
		possible += day.Total
	}
	if possible == 0 {
		return 0
	}
	return float64(completed) / float64(possible) * 100
}
