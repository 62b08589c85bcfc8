package tracker

import (
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
	"github.com/julianstephens/habitflow/internal/sync"
	"github.com/julianstephens/habitflow/internal/utils"
)

// ErrHabitNotFound is returned by operations that require an existing
// habit. Track and Untrack deliberately do not return it; tracking an
// unknown id is a silent no-op.
var ErrHabitNotFound = errors.New("habit not found")

// Tracker is the state container owning the habit registry and the daily
// log store. Every mutation persists the full {logs, habits} snapshot
// synchronously before it is considered committed, then fires the change
// hook for the sync dispatcher.
//
// The mutex serializes all state access: the sync dispatcher's debounce
// timer reads the payload from its own goroutine while the owning process
// keeps mutating, so the registry, logs, and the storage provider behind
// them must never be touched without holding mu.
type Tracker struct {
	mu       stdsync.Mutex
	store    storage.Provider
	now      func() time.Time
	registry *Registry
	logs     *LogStore
	profile  models.UserProfile
	syncCfg  models.SyncConfig
	onChange func()
	onClear  func()
}

type Option func(*Tracker)

// WithClock overrides the time source, used by tests to control day
// rollover.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(store storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		store:    store,
		now:      time.Now,
		registry: NewRegistry(),
		logs:     NewLogStore(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnChange registers a hook fired after every committed mutation of the
// registry's live view. The sync dispatcher uses it to restart its
// debounce timer.
func (t *Tracker) OnChange(fn func()) {
	t.onChange = fn
}

// OnClear registers a hook fired by ClearAll, used to cancel any pending
// sync dispatch.
func (t *Tracker) OnClear(fn func()) {
	t.onClear = fn
}

// Load pulls persisted state from storage, reconciles it with the seed
// registry, and projects today's log onto the live counts. Malformed
// state falls back to the seed set; startup never fails on bad data.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.store.GetState()
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return err
		}
		logger.Warn("Persisted state is corrupted, falling back to defaults", "error", err)
		state = models.State{}
	}

	t.registry.Replace(mergePersisted(constants.DefaultHabits(), state.Habits))
	t.logs.Replace(state.Logs)
	t.project()

	if t.profile, err = t.store.GetProfile(); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return err
		}
		logger.Warn("Persisted profile is corrupted, falling back to empty profile", "error", err)
		t.profile = models.UserProfile{}
	}

	if t.syncCfg, err = t.store.GetSyncConfig(); err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return err
		}
		logger.Warn("Persisted sync config is corrupted, sync disabled", "error", err)
		t.syncCfg = models.SyncConfig{}
	}

	return nil
}

func (t *Tracker) todayKey() string {
	return utils.DayKey(t.now())
}

// TodayKey returns the current date key in the local zone.
func (t *Tracker) TodayKey() string {
	return t.todayKey()
}

// Habits returns a copy of the registry with today's projection applied.
func (t *Tracker) Habits() map[string]models.Habit {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.project()
	return t.registry.List()
}

// Habit returns a single habit with today's projection applied.
func (t *Tracker) Habit(id string) (models.Habit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.project()
	return t.registry.Get(id)
}

// Logs returns a copy of all recorded days.
func (t *Tracker) Logs() models.Logs {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logs.All()
}

// Day returns a copy of the log for a date key, empty for unrecorded
// days.
func (t *Tracker) Day(dayKey string) models.DailyLog {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := t.logs.Day(dayKey)
	habits := make(map[string]models.LogEntry, len(day.Habits))
	for id, entry := range day.Habits {
		habits[id] = entry
	}
	return models.DailyLog{Habits: habits}
}

func (t *Tracker) persist() error {
	state := models.State{
		Logs:   t.logs.All(),
		Habits: t.registry.List(),
	}
	if err := t.store.SaveState(state); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}

// record writes the new count for a habit into today's log, refreshes the
// live projection, and persists.
func (t *Tracker) record(id string, count, goal float64) error {
	t.logs.RecordCount(t.todayKey(), id, count, goal)
	t.registry.SetCount(id, count)
	if err := t.persist(); err != nil {
		return err
	}
	t.notify()
	return nil
}

// Track increments a habit by its step. Unknown ids are a silent no-op.
func (t *Tracker) Track(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.project()
	h, ok := t.registry.Get(id)
	if !ok {
		return nil
	}
	return t.record(id, h.Count+h.Step, h.Goal)
}

// Untrack decrements a habit by its step, clamping at zero. Unknown ids
// are a silent no-op.
func (t *Tracker) Untrack(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.project()
	h, ok := t.registry.Get(id)
	if !ok {
		return nil
	}
	count := h.Count - h.Step
	if count < 0 {
		count = 0
	}
	return t.record(id, count, h.Goal)
}

// UpdateHabit merges partial fields (name, goal, unit, icon, color) into
// an existing habit. Count and step are untouched.
func (t *Tracker) UpdateHabit(id string, upd models.HabitUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.project()
	if !t.registry.Update(id, upd) {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	if err := t.persist(); err != nil {
		return err
	}
	t.notify()
	return nil
}

// AddHabit inserts a habit. The caller is responsible for generating a
// unique id.
func (t *Tracker) AddHabit(h models.Habit) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	h.Count = 0
	t.registry.Add(h)
	t.project()
	if err := t.persist(); err != nil {
		return err
	}
	t.notify()
	return nil
}

// DeleteHabit removes a habit from the registry. Its log history is
// retained.
func (t *Tracker) DeleteHabit(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.registry.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	t.registry.Remove(id)
	if err := t.persist(); err != nil {
		return err
	}
	t.notify()
	return nil
}

// ResetToday deletes today's log entirely and zeroes every live count.
// Both effects land in one persisted snapshot, so no intermediate state
// is ever observable.
func (t *Tracker) ResetToday() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logs.DeleteDay(t.todayKey())
	t.project()
	if err := t.persist(); err != nil {
		return err
	}
	t.notify()
	return nil
}

// ClearAll is a hard reset equivalent to a fresh install: log store
// wiped, registry reseeded, profile and sync config cleared, any pending
// sync dispatch cancelled. The cached user id and theme survive.
func (t *Tracker) ClearAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.onClear != nil {
		t.onClear()
	}

	if err := t.store.Wipe(); err != nil {
		return fmt.Errorf("failed to wipe storage: %w", err)
	}

	t.logs.Clear()
	t.registry.Replace(mergePersisted(constants.DefaultHabits(), nil))
	t.profile = models.UserProfile{}
	t.syncCfg = models.SyncConfig{}

	return t.persist()
}

// Profile returns the stored user profile.
func (t *Tracker) Profile() models.UserProfile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile
}

// SetProfile persists the user profile.
func (t *Tracker) SetProfile(p models.UserProfile) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.SaveProfile(p); err != nil {
		return err
	}
	t.profile = p
	return nil
}

// SyncConfig returns the stored sync endpoints.
func (t *Tracker) SyncConfig() models.SyncConfig {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.syncCfg
}

// SetSyncConfig persists the sync endpoints.
func (t *Tracker) SetSyncConfig(cfg models.SyncConfig) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.SaveSyncConfig(cfg); err != nil {
		return err
	}
	t.syncCfg = cfg
	return nil
}

// UserID returns the pseudo-stable user identifier, generating and
// caching it on first use.
func (t *Tracker) UserID() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.userID()
}

// userID is UserID with mu held.
func (t *Tracker) userID() (string, error) {
	id, err := t.store.GetUserID()
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = sync.GenerateUserID()
	if err := t.store.SaveUserID(id); err != nil {
		return "", err
	}
	return id, nil
}

// SyncEndpoint implements sync.Source.
func (t *Tracker) SyncEndpoint() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.syncCfg.AppURL
}

// SyncPayload implements sync.Source: a flat record with the user
// identity, today's date key, and one count plus one goal key per habit.
// The dispatcher's timer goroutine calls this concurrently with the
// owning process's mutations; the snapshot is taken under the lock.
func (t *Tracker) SyncPayload() (map[string]any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	userID, err := t.userID()
	if err != nil {
		return nil, err
	}

	name := t.profile.Name
	if name == "" {
		name = "Anonymous"
	}
	email := t.profile.Email
	if email == "" {
		email = "No Email"
	}

	payload := map[string]any{
		"userId":    userID,
		"userName":  name,
		"userEmail": email,
		"date":      t.todayKey(),
	}

	t.project()
	for id, h := range t.registry.List() {
		payload[id] = h.Count
		payload[id+"Goal"] = h.Goal
	}
	return payload, nil
}
