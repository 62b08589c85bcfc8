package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitflow/internal/models"
)

type Store struct {
	Version int                `json:"version"`
	State   models.State       `json:"state"`
	Profile models.UserProfile `json:"profile"`
	Sync    models.SyncConfig  `json:"sync"`
	UserID  string             `json:"user_id"`
	Theme   string             `json:"theme"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyStore() *Store {
	return &Store{
		Version: 1,
		State: models.State{
			Logs:   models.Logs{},
			Habits: map[string]models.Habit{},
		},
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Leave a usable empty store in place so the caller can recover
		// with defaults; the next save overwrites the bad file.
		s.store = emptyStore()
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Ensure maps are initialized
	if s.store.State.Logs == nil {
		s.store.State.Logs = models.Logs{}
	}
	if s.store.State.Habits == nil {
		s.store.State.Habits = map[string]models.Habit{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetState() (models.State, error) {
	if s.store == nil {
		return models.State{}, fmt.Errorf("storage not loaded")
	}
	return s.store.State, nil
}

func (s *JSONStore) SaveState(state models.State) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.State = state
	return s.save()
}

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	if s.store == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Profile = profile
	return s.save()
}

func (s *JSONStore) GetSyncConfig() (models.SyncConfig, error) {
	if s.store == nil {
		return models.SyncConfig{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Sync, nil
}

func (s *JSONStore) SaveSyncConfig(cfg models.SyncConfig) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Sync = cfg
	return s.save()
}

func (s *JSONStore) GetUserID() (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.UserID, nil
}

func (s *JSONStore) SaveUserID(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.UserID = id
	return s.save()
}

func (s *JSONStore) GetTheme() (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.Theme, nil
}

func (s *JSONStore) SaveTheme(theme string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Theme = theme
	return s.save()
}

func (s *JSONStore) Wipe() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// User id and theme survive a wipe
	userID := s.store.UserID
	theme := s.store.Theme
	s.store = emptyStore()
	s.store.UserID = userID
	s.store.Theme = theme
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple habitflow processes that share the same storage path at
//     the same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
