package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/habitflow/internal/models"
)

func testState() models.State {
	return models.State{
		Habits: map[string]models.Habit{
			"water": {ID: "water", Name: "Water", Goal: 8, Unit: "glasses", Step: 1},
		},
		Logs: models.Logs{
			"2026-08-31": {Habits: map[string]models.LogEntry{
				"water": {Count: 3, Goal: 8},
			}},
		},
	}
}

func newJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitflow.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init on the same path should fail")
	}
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("got %v, want a 'not initialized' error", err)
	}
}

func TestJSONStore_NotLoadedGuards(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitflow.json"))
	if _, err := store.GetState(); err == nil {
		t.Error("GetState before Load should fail")
	}
	if err := store.SaveState(models.State{}); err == nil {
		t.Error("SaveState before Load should fail")
	}
	if err := store.Wipe(); err == nil {
		t.Error("Wipe before Load should fail")
	}
}

func TestJSONStore_StateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitflow.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.SaveState(testState()); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reopen Load failed: %v", err)
	}
	state, err := reopened.GetState()
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}

	if state.Habits["water"].Goal != 8 {
		t.Errorf("habit lost in round trip: %+v", state.Habits["water"])
	}
	if state.Logs["2026-08-31"].Habits["water"].Count != 3 {
		t.Errorf("log entry lost in round trip: %+v", state.Logs["2026-08-31"])
	}
}

func TestJSONStore_CorruptFileReturnsErrCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitflow.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := store.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("got %v, want ErrCorrupt", err)
	}

	// The store stays usable with defaults after a corrupt load.
	state, err := store.GetState()
	if err != nil {
		t.Fatalf("GetState after corrupt load failed: %v", err)
	}
	if len(state.Habits) != 0 || len(state.Logs) != 0 {
		t.Errorf("expected empty defaults, got %+v", state)
	}
}

func TestJSONStore_ProfileAndSyncConfig(t *testing.T) {
	store := newJSONStore(t)

	if err := store.SaveProfile(models.UserProfile{Name: "Sam", Email: "sam@example.com"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := store.SaveSyncConfig(models.SyncConfig{SheetURL: "https://sheet", AppURL: "https://push"}); err != nil {
		t.Fatalf("SaveSyncConfig failed: %v", err)
	}

	profile, err := store.GetProfile()
	if err != nil || profile.Name != "Sam" {
		t.Errorf("GetProfile = %+v, %v", profile, err)
	}
	cfg, err := store.GetSyncConfig()
	if err != nil || cfg.AppURL != "https://push" {
		t.Errorf("GetSyncConfig = %+v, %v", cfg, err)
	}
}

func TestJSONStore_WipePreservesUserIDAndTheme(t *testing.T) {
	store := newJSONStore(t)

	if err := store.SaveState(testState()); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := store.SaveProfile(models.UserProfile{Name: "Sam"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := store.SaveUserID("device-123"); err != nil {
		t.Fatalf("SaveUserID failed: %v", err)
	}
	if err := store.SaveTheme("dark"); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}

	if err := store.Wipe(); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}

	state, _ := store.GetState()
	if len(state.Habits) != 0 || len(state.Logs) != 0 {
		t.Errorf("state survived wipe: %+v", state)
	}
	if profile, _ := store.GetProfile(); profile != (models.UserProfile{}) {
		t.Errorf("profile survived wipe: %+v", profile)
	}
	if id, _ := store.GetUserID(); id != "device-123" {
		t.Errorf("user id = %q after wipe, want device-123", id)
	}
	if theme, _ := store.GetTheme(); theme != "dark" {
		t.Errorf("theme = %q after wipe, want dark", theme)
	}
}
