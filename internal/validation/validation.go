// Package validation rejects invalid user input before it reaches the
// tracker. The tracker itself only guards against non-positive goals and
// negative counts; everything else is stopped here with a user-facing
// message.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/utils"
)

// ValidateHabit checks a habit definition before insertion.
func ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if h.Goal <= 0 {
		return fmt.Errorf("habit goal must be positive, got %v", h.Goal)
	}
	if h.Step <= 0 {
		return fmt.Errorf("habit step must be positive, got %v", h.Step)
	}
	return nil
}

// ValidateHabitUpdate checks a partial habit edit.
func ValidateHabitUpdate(upd models.HabitUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if upd.Goal != nil && *upd.Goal <= 0 {
		return fmt.Errorf("habit goal must be positive, got %v", *upd.Goal)
	}
	return nil
}

// ValidateProfile checks the user profile. A non-empty name is required;
// it gates access to the tracked application.
func ValidateProfile(p models.UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return fmt.Errorf("email %q does not look like an email address", p.Email)
	}
	return nil
}

// ValidateTheme checks a theme preference value.
func ValidateTheme(theme string) error {
	switch constants.Theme(theme) {
	case constants.ThemeLight, constants.ThemeDark:
		return nil
	}
	return fmt.Errorf("invalid theme %q (expected %q or %q)", theme, constants.ThemeLight, constants.ThemeDark)
}

// ParseCount parses a user-entered numeric value such as a goal or step.
func ParseCount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// ValidateDayKey checks a YYYY-MM-DD date key.
func ValidateDayKey(key string) error {
	if !utils.ValidDayKey(key) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", key)
	}
	return nil
}
