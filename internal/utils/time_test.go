package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	d := time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local)
	if got := DayKey(d); got != "2026-08-31" {
		t.Errorf("DayKey = %q, want 2026-08-31", got)
	}
}

func TestParseDayKey_RoundTrip(t *testing.T) {
	parsed, err := ParseDayKey("2026-08-31")
	if err != nil {
		t.Fatalf("ParseDayKey failed: %v", err)
	}
	if got := DayKey(parsed); got != "2026-08-31" {
		t.Errorf("round trip = %q", got)
	}
}

func TestValidDayKey(t *testing.T) {
	cases := []struct {
		key   string
		valid bool
	}{
		{"2026-08-31", true},
		{"2026-02-29", false}, // 2026 is not a leap year
		{"08/31/2026", false},
		{"2026-8-31", false},
		{"", false},
		{"today", false},
	}
	for _, tc := range cases {
		if got := ValidDayKey(tc.key); got != tc.valid {
			t.Errorf("ValidDayKey(%q) = %v, want %v", tc.key, got, tc.valid)
		}
	}
}

func TestReadableDate(t *testing.T) {
	got, err := ReadableDate("2026-08-31")
	if err != nil {
		t.Fatalf("ReadableDate failed: %v", err)
	}
	if got != "Monday, August 31, 2026" {
		t.Errorf("ReadableDate = %q", got)
	}

	if _, err := ReadableDate("bogus"); err == nil {
		t.Error("expected error for malformed key")
	}
}
