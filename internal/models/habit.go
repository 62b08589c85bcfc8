package models

// Habit represents a trackable daily goal with a numeric target.
//
// Count is today's progress and is a cached projection of the daily log:
// it always equals the count recorded for the current day, or 0 if the
// habit has not been tracked today. It is never trusted from a persisted
// snapshot.
type Habit struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Count float64 `json:"count"`
	Goal  float64 `json:"goal"`
	Unit  string  `json:"unit"`
	Step  float64 `json:"step"`
	Icon  string  `json:"icon"`
	Color string  `json:"color"`
}

// HabitUpdate carries a partial edit of a habit. Nil fields are left
// untouched. Count and Step are deliberately absent: count is derived
// from the log and step is fixed at creation.
type HabitUpdate struct {
	Name  *string  `json:"name,omitempty"`
	Goal  *float64 `json:"goal,omitempty"`
	Unit  *string  `json:"unit,omitempty"`
	Icon  *string  `json:"icon,omitempty"`
	Color *string  `json:"color,omitempty"`
}

// LogEntry is the recorded progress for one habit on one day. Goal is the
// habit's goal at the time the entry was last written, so history stays
// accurate when goals change later.
type LogEntry struct {
	Count float64 `json:"count"`
	Goal  float64 `json:"goal"`
}

// DailyLog is the recorded progress snapshot for one calendar day. An
// entry exists for a habit only if it was tracked at least once that day.
type DailyLog struct {
	Habits map[string]LogEntry `json:"habits"`
}

// Logs maps date keys (YYYY-MM-DD) to daily logs.
type Logs map[string]DailyLog

// State is the primary persisted snapshot.
type State struct {
	Logs   Logs             `json:"logs"`
	Habits map[string]Habit `json:"habits"`
}
