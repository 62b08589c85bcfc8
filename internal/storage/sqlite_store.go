package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitflow/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	goal REAL NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	step REAL NOT NULL DEFAULT 1,
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS log_entries (
	day TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	count REAL NOT NULL,
	goal REAL NOT NULL,
	PRIMARY KEY (day, habit_id)
);

CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// kv keys
const (
	kvProfile = "profile"
	kvSync    = "sync"
	kvUserID  = "user_id"
	kvTheme   = "theme"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Idempotent: brings forward databases created by older versions
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetState() (models.State, error) {
	state := models.State{
		Logs:   models.Logs{},
		Habits: map[string]models.Habit{},
	}

	if s.db == nil {
		return state, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT id, name, goal, unit, step, icon, color FROM habits")
	if err != nil {
		return state, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Goal, &h.Unit, &h.Step, &h.Icon, &h.Color); err != nil {
			return state, fmt.Errorf("failed to scan habit: %w", err)
		}
		state.Habits[h.ID] = h
	}
	if err := rows.Err(); err != nil {
		return state, err
	}

	entryRows, err := s.db.Query("SELECT day, habit_id, count, goal FROM log_entries")
	if err != nil {
		return state, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var day, habitID string
		var entry models.LogEntry
		if err := entryRows.Scan(&day, &habitID, &entry.Count, &entry.Goal); err != nil {
			return state, fmt.Errorf("failed to scan log entry: %w", err)
		}
		log, ok := state.Logs[day]
		if !ok {
			log = models.DailyLog{Habits: map[string]models.LogEntry{}}
		}
		log.Habits[habitID] = entry
		state.Logs[day] = log
	}
	if err := entryRows.Err(); err != nil {
		return state, err
	}

	return state, nil
}

func (s *SQLiteStore) SaveState(state models.State) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Full snapshot rewrite. The dataset is personal-scale, so rewriting
	// both tables in one transaction keeps the write atomic without
	// diffing against the previous snapshot.
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM log_entries"); err != nil {
		return fmt.Errorf("failed to clear log entries: %w", err)
	}

	for _, h := range state.Habits {
		_, err := tx.Exec(
			"INSERT INTO habits (id, name, goal, unit, step, icon, color) VALUES (?, ?, ?, ?, ?, ?, ?)",
			h.ID, h.Name, h.Goal, h.Unit, h.Step, h.Icon, h.Color,
		)
		if err != nil {
			return fmt.Errorf("failed to insert habit %s: %w", h.ID, err)
		}
	}

	for day, log := range state.Logs {
		for habitID, entry := range log.Habits {
			_, err := tx.Exec(
				"INSERT INTO log_entries (day, habit_id, count, goal) VALUES (?, ?, ?, ?)",
				day, habitID, entry.Count, entry.Goal,
			)
			if err != nil {
				return fmt.Errorf("failed to insert log entry %s/%s: %w", day, habitID, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) getKV(key string) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) setKV(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetProfile() (models.UserProfile, error) {
	raw, err := s.getKV(kvProfile)
	if err != nil || raw == "" {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return profile, nil
}

func (s *SQLiteStore) SaveProfile(profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	return s.setKV(kvProfile, string(raw))
}

func (s *SQLiteStore) GetSyncConfig() (models.SyncConfig, error) {
	raw, err := s.getKV(kvSync)
	if err != nil || raw == "" {
		return models.SyncConfig{}, err
	}

	var cfg models.SyncConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return models.SyncConfig{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return cfg, nil
}

func (s *SQLiteStore) SaveSyncConfig(cfg models.SyncConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize sync config: %w", err)
	}
	return s.setKV(kvSync, string(raw))
}

func (s *SQLiteStore) GetUserID() (string, error) {
	return s.getKV(kvUserID)
}

func (s *SQLiteStore) SaveUserID(id string) error {
	return s.setKV(kvUserID, id)
}

func (s *SQLiteStore) GetTheme() (string, error) {
	return s.getKV(kvTheme)
}

func (s *SQLiteStore) SaveTheme(theme string) error {
	return s.setKV(kvTheme, theme)
}

func (s *SQLiteStore) Wipe() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM log_entries"); err != nil {
		return fmt.Errorf("failed to clear log entries: %w", err)
	}
	// User id and theme survive a wipe
	if _, err := tx.Exec("DELETE FROM kv WHERE key IN (?, ?)", kvProfile, kvSync); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	return tx.Commit()
}

// GetConfigPath returns the path to the underlying database file. See the
// concurrency note on JSONStore.GetConfigPath; the same restrictions apply.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
