package tracker

import "github.com/julianstephens/habitflow/internal/models"

// LogStore is the in-memory daily log store: date key -> per-habit
// {count, goal} snapshots. Entries exist only for habits that were
// actually tracked on a day; nothing is pre-created.
type LogStore struct {
	logs models.Logs
}

func NewLogStore() *LogStore {
	return &LogStore{
		logs: models.Logs{},
	}
}

// RecordCount upserts the entry for a day/habit, creating the day's log
// if absent. The goal is snapshotted alongside the count so history stays
// accurate when the habit's goal changes later.
func (l *LogStore) RecordCount(dayKey, habitID string, count, goal float64) {
	day, ok := l.logs[dayKey]
	if !ok {
		day = models.DailyLog{Habits: map[string]models.LogEntry{}}
	}
	day.Habits[habitID] = models.LogEntry{Count: count, Goal: goal}
	l.logs[dayKey] = day
}

// Day returns the log for a date key. Unrecorded days yield an empty log
// with a non-nil habit map, never an error.
func (l *LogStore) Day(dayKey string) models.DailyLog {
	day, ok := l.logs[dayKey]
	if !ok {
		return models.DailyLog{Habits: map[string]models.LogEntry{}}
	}
	return day
}

// DeleteDay removes a whole day's log.
func (l *LogStore) DeleteDay(dayKey string) {
	delete(l.logs, dayKey)
}

// Clear empties the entire store.
func (l *LogStore) Clear() {
	l.logs = models.Logs{}
}

// All returns a deep copy of the logs.
func (l *LogStore) All() models.Logs {
	out := make(models.Logs, len(l.logs))
	for key, day := range l.logs {
		habits := make(map[string]models.LogEntry, len(day.Habits))
		for id, entry := range day.Habits {
			habits[id] = entry
		}
		out[key] = models.DailyLog{Habits: habits}
	}
	return out
}

// Replace swaps the entire log contents.
func (l *LogStore) Replace(logs models.Logs) {
	l.logs = models.Logs{}
	for key, day := range logs {
		habits := make(map[string]models.LogEntry, len(day.Habits))
		for id, entry := range day.Habits {
			habits[id] = entry
		}
		l.logs[key] = models.DailyLog{Habits: habits}
	}
}

func (l *LogStore) Len() int {
	return len(l.logs)
}
