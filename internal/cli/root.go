package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitflow/internal/backup"
	"github.com/julianstephens/habitflow/internal/keyring"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
	"github.com/julianstephens/habitflow/internal/sync"
	"github.com/julianstephens/habitflow/internal/tracker"
	"github.com/julianstephens/habitflow/internal/validation"
)

type Context struct {
	Store      storage.Provider
	Tracker    *tracker.Tracker
	Dispatcher *sync.Dispatcher
}

// Load opens storage and pulls state into the tracker. Corrupted state is
// tolerated (the tracker falls back to defaults); a missing storage file
// is not.
func (c *Context) Load() error {
	if err := c.Store.Load(); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return err
		}
		logger.Warn("Storage file is corrupted, continuing with defaults", "error", err)
	}
	return c.Tracker.Load()
}

// RequireProfile ensures a user name is present, prompting for one on
// first use. A non-empty name is what gates the tracked application.
func (c *Context) RequireProfile() error {
	if c.Tracker.Profile().Name != "" {
		return nil
	}

	profile := models.UserProfile{}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to HabitFlow! What's your name?").
				Value(&profile.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email (optional, used only for sync)").
				Value(&profile.Email),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("profile setup cancelled: %w", err)
	}

	if err := validation.ValidateProfile(profile); err != nil {
		return err
	}
	return c.Tracker.SetProfile(profile)
}

// RequirePIN verifies the admin PIN when one is set. Commands touching
// sync configuration or wiping data call this first.
func (c *Context) RequirePIN() error {
	if !keyring.HasPIN() {
		return nil
	}

	var pin string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter admin PIN").
				EchoMode(huh.EchoModePassword).
				Value(&pin),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("PIN entry cancelled: %w", err)
	}

	ok, err := keyring.CheckPIN(pin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("incorrect PIN")
	}
	return nil
}

// PerformAutomaticBackup creates a backup and silently handles errors.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// findHabit resolves a user-supplied reference to a habit, matching the
// id first and then the display name case-insensitively.
func findHabit(habits map[string]models.Habit, ref string) (models.Habit, bool) {
	if h, ok := habits[ref]; ok {
		return h, true
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, true
		}
	}
	return models.Habit{}, false
}

// sortedHabits returns habits ordered by display name for stable output.
func sortedHabits(habits map[string]models.Habit) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// formatCount renders a count without trailing zeros (8, 7.5, 0.5).
func formatCount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}
