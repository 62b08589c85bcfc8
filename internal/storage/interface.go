package storage

import (
	"errors"

	"github.com/julianstephens/habitflow/internal/models"
)

// ErrCorrupt marks persisted state that could not be parsed. Callers are
// expected to fall back to defaults rather than abort startup.
var ErrCorrupt = errors.New("storage corrupted")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Primary state snapshot ({logs, habits})
	GetState() (models.State, error)
	SaveState(models.State) error

	// User profile
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Sync endpoints
	GetSyncConfig() (models.SyncConfig, error)
	SaveSyncConfig(models.SyncConfig) error

	// Cached pseudo-stable user identifier, generated once and reused
	GetUserID() (string, error)
	SaveUserID(string) error

	// Theme preference ("light" | "dark")
	GetTheme() (string, error)
	SaveTheme(string) error

	// Wipe clears state, profile, and sync config. The cached user id and
	// theme survive a wipe, matching a fresh install on the same device.
	Wipe() error

	// Utils
	GetConfigPath() string
}
