package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/habitflow/internal/models"
)

func day(entries map[string]models.LogEntry) models.DailyLog {
	return models.DailyLog{Habits: entries}
}

func completeDay() models.DailyLog {
	return day(map[string]models.LogEntry{
		"water": {Count: 8, Goal: 8},
		"sleep": {Count: 8, Goal: 8},
	})
}

func incompleteDay() models.DailyLog {
	return day(map[string]models.LogEntry{
		"water": {Count: 3, Goal: 8},
	})
}

func TestDayComplete_EmptyDayIsNeverComplete(t *testing.T) {
	if DayComplete(day(nil)) {
		t.Error("day with no entries must not be complete")
	}
	if DayComplete(day(map[string]models.LogEntry{})) {
		t.Error("day with empty entry map must not be complete")
	}
}

func TestDayComplete_AllGoalsMet(t *testing.T) {
	if !DayComplete(completeDay()) {
		t.Error("expected day with all goals met to be complete")
	}
}

func TestDayComplete_OneMissedGoal(t *testing.T) {
	d := day(map[string]models.LogEntry{
		"water": {Count: 8, Goal: 8},
		"sleep": {Count: 7.5, Goal: 8},
	})
	if DayComplete(d) {
		t.Error("one entry below goal must make the day incomplete")
	}
}

func TestCurrentStreak_TodayInProgressDoesNotBreak(t *testing.T) {
	// Yesterday and the day before are complete; today has no entries
	// yet. The streak is 2: today neither counts nor breaks it.
	logs := models.Logs{
		"2026-08-29": completeDay(),
		"2026-08-30": completeDay(),
	}
	if got := CurrentStreak(logs, "2026-08-31"); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreak_TodayCompleteCounts(t *testing.T) {
	logs := models.Logs{
		"2026-08-30": completeDay(),
		"2026-08-31": completeDay(),
	}
	if got := CurrentStreak(logs, "2026-08-31"); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreak_IncompleteYesterdayBreaks(t *testing.T) {
	logs := models.Logs{
		"2026-08-29": completeDay(),
		"2026-08-30": incompleteDay(),
		"2026-08-31": completeDay(),
	}
	if got := CurrentStreak(logs, "2026-08-31"); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestCurrentStreak_NoLogs(t *testing.T) {
	if got := CurrentStreak(models.Logs{}, "2026-08-31"); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
}

func TestCurrentStreak_InvalidToday(t *testing.T) {
	logs := models.Logs{"2026-08-30": completeDay()}
	if got := CurrentStreak(logs, "not-a-date"); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
}

func TestLongestStreak_HistoricalRunBeatsCurrent(t *testing.T) {
	// A three-day run in the past, broken, then one complete day before
	// today.
	logs := models.Logs{
		"2026-08-20": completeDay(),
		"2026-08-21": completeDay(),
		"2026-08-22": completeDay(),
		"2026-08-23": incompleteDay(),
		"2026-08-30": completeDay(),
	}
	if got := LongestStreak(logs, "2026-08-31"); got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
}

func TestLongestStreak_NeverLessThanCurrent(t *testing.T) {
	logs := models.Logs{
		"2026-08-29": completeDay(),
		"2026-08-30": completeDay(),
	}
	longest := LongestStreak(logs, "2026-08-31")
	current := CurrentStreak(logs, "2026-08-31")
	if longest < current {
		t.Errorf("LongestStreak = %d is less than CurrentStreak = %d", longest, current)
	}
}

func TestLongestStreak_GapsInRecordedDaysDoNotReset(t *testing.T) {
	// Only recorded days participate in the run; a calendar gap between
	// recorded complete days does not reset the counter.
	logs := models.Logs{
		"2026-08-10": completeDay(),
		"2026-08-15": completeDay(),
		"2026-08-20": completeDay(),
	}
	if got := LongestStreak(logs, "2026-08-31"); got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
}

func TestPerfectDays(t *testing.T) {
	logs := models.Logs{
		"2026-08-28": completeDay(),
		"2026-08-29": incompleteDay(),
		"2026-08-30": completeDay(),
	}
	if got := PerfectDays(logs); got != 2 {
		t.Errorf("PerfectDays = %d, want 2", got)
	}
}

func TestHabitAverage_AllLoggedDaysInDenominator(t *testing.T) {
	// 4 glasses on one day, nothing on the other: average is 4/2, not 4/1.
	logs := models.Logs{
		"2026-08-30": day(map[string]models.LogEntry{"water": {Count: 4, Goal: 8}}),
		"2026-08-31": day(map[string]models.LogEntry{"sleep": {Count: 8, Goal: 8}}),
	}
	if got := HabitAverage(logs, "water"); got != 2.0 {
		t.Errorf("HabitAverage = %v, want 2.0", got)
	}
}

func TestHabitAverage_NoLogs(t *testing.T) {
	if got := HabitAverage(models.Logs{}, "water"); got != 0 {
		t.Errorf("HabitAverage = %v, want 0", got)
	}
}

func TestWeeklySeries_SevenTrailingDays(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	logs := models.Logs{
		"2026-08-31": day(map[string]models.LogEntry{
			"water": {Count: 8, Goal: 8},
			"sleep": {Count: 4, Goal: 8},
		}),
		"2026-08-28": completeDay(),
	}

	series := WeeklySeries(logs, 4, today)
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Date != "2026-08-25" {
		t.Errorf("series starts at %s, want 2026-08-25", series[0].Date)
	}
	if series[6].Date != "2026-08-31" {
		t.Errorf("series ends at %s, want 2026-08-31", series[6].Date)
	}

	last := series[6]
	if last.Completed != 1 || last.Total != 4 {
		t.Errorf("today scored %d/%d, want 1/4", last.Completed, last.Total)
	}
	if last.Score != 25 {
		t.Errorf("today score = %v, want 25", last.Score)
	}

	// Unrecorded day
	if series[1].Completed != 0 || series[1].Score != 0 {
		t.Errorf("unrecorded day scored %d (%v%%), want 0", series[1].Completed, series[1].Score)
	}
}

func TestWeeklySeries_ZeroHabits(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	series := WeeklySeries(models.Logs{}, 0, today)
	for _, d := range series {
		if d.Score != 0 {
			t.Errorf("day %s score = %v, want 0 with no habits", d.Date, d.Score)
		}
	}
	if WeeklyScore(series) != 0 {
		t.Error("WeeklyScore over empty registry must be 0")
	}
}

func TestWeeklyScore(t *testing.T) {
	series := []DayScore{
		{Completed: 2, Total: 4},
		{Completed: 4, Total: 4},
	}
	if got := WeeklyScore(series); got != 75 {
		t.Errorf("WeeklyScore = %v, want 75", got)
	}
}
