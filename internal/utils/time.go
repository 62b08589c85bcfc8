package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
)

// DayKey returns the date key (YYYY-MM-DD) for the given instant in its
// own location. "Today" is always determined in the device's local zone.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// TodayKey returns the date key for the current local time.
func TodayKey() string {
	return DayKey(time.Now())
}

// ParseDayKey parses a YYYY-MM-DD date key.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %q (expected YYYY-MM-DD)", key)
	}
	return t, nil
}

// ValidDayKey reports whether the string is a well-formed date key.
func ValidDayKey(key string) bool {
	_, err := ParseDayKey(key)
	return err == nil
}

// ReadableDate formats a date key for display, e.g.
// "Monday, January 2, 2006".
func ReadableDate(key string) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return t.Format(constants.ReadableDateFormat), nil
}
