package constants

import "github.com/julianstephens/habitflow/internal/models"

// DefaultHabits is the seed registry installed on first run and after a
// full data wipe. Keys are stable habit ids.
func DefaultHabits() map[string]models.Habit {
	return map[string]models.Habit{
		"water": {
			ID:    "water",
			Name:  "Water",
			Goal:  8,
			Unit:  "glasses",
			Step:  1,
			Icon:  "glass-water",
			Color: "sky",
		},
		"sleep": {
			ID:    "sleep",
			Name:  "Sleep",
			Goal:  8,
			Unit:  "hours",
			Step:  0.5,
			Icon:  "moon",
			Color: "indigo",
		},
		"meditation": {
			ID:    "meditation",
			Name:  "Meditation",
			Goal:  10,
			Unit:  "minutes",
			Step:  5,
			Icon:  "brain-cog",
			Color: "purple",
		},
		"workout": {
			ID:    "workout",
			Name:  "Workout",
			Goal:  1,
			Unit:  "sessions",
			Step:  1,
			Icon:  "dumbbell",
			Color: "amber",
		},
	}
}
