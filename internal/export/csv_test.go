package export

import (
	"strings"
	"testing"

	"github.com/julianstephens/habitflow/internal/models"
)

func TestCSV_HeaderAndRows(t *testing.T) {
	habits := map[string]models.Habit{
		"water": {ID: "water", Name: "Water"},
		"sleep": {ID: "sleep", Name: "Sleep"},
	}
	logs := models.Logs{
		"2026-08-31": {Habits: map[string]models.LogEntry{
			"water": {Count: 8, Goal: 8},
		}},
		"2026-08-30": {Habits: map[string]models.LogEntry{
			"water": {Count: 3, Goal: 8},
			"sleep": {Count: 7.5, Goal: 8},
		}},
	}

	got := CSV(habits, logs)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), got)
	}

	// Columns follow sorted habit ids: sleep before water.
	if lines[0] != "Date,Sleep,Water" {
		t.Errorf("header = %q", lines[0])
	}
	// Days ascend.
	if lines[1] != "2026-08-30,7.5,3" {
		t.Errorf("first row = %q", lines[1])
	}
	// Habits without an entry read 0.
	if lines[2] != "2026-08-31,0,8" {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestCSV_NoLogs(t *testing.T) {
	habits := map[string]models.Habit{"water": {ID: "water", Name: "Water"}}
	got := CSV(habits, models.Logs{})
	if got != "Date,Water\n" {
		t.Errorf("got %q, want header only", got)
	}
}

func TestCSV_NoHabits(t *testing.T) {
	logs := models.Logs{"2026-08-31": {Habits: map[string]models.LogEntry{}}}
	got := CSV(nil, logs)
	if got != "Date\n2026-08-31\n" {
		t.Errorf("got %q", got)
	}
}
