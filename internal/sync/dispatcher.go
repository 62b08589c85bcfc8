package sync

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	stdsync "sync"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/logger"
)

// State is the dispatcher's sync state.
type State int

const (
	Idle State = iota
	Syncing
)

var (
	// ErrNotConfigured is returned by a manual sync when no push endpoint
	// has been set. The automatic path skips silently instead.
	ErrNotConfigured = errors.New("no sync endpoint configured")
	// ErrSyncInFlight is returned by a manual sync while another sync is
	// running. Concurrent triggers collapse to the in-flight one.
	ErrSyncInFlight = errors.New("a sync is already in progress")
)

// Source supplies the dispatcher with the current endpoint and payload.
// Both are read at dispatch time, not at scheduling time.
type Source interface {
	SyncEndpoint() string
	SyncPayload() (map[string]any, error)
}

// Dispatcher pushes the day's state to the configured endpoint, one-way
// and best-effort. Automatic dispatches are debounced behind a quiet
// period; the Idle/Syncing flag guarantees at most one request in flight.
// There is no cancellation of a dispatched request: once sent, it
// completes or fails on its own schedule.
type Dispatcher struct {
	mu     stdsync.Mutex
	state  State
	timer  *time.Timer
	quiet  time.Duration
	client *http.Client
	source Source
}

type Option func(*Dispatcher)

// WithQuietPeriod overrides the debounce quiet period, used by tests.
func WithQuietPeriod(quiet time.Duration) Option {
	return func(d *Dispatcher) {
		d.quiet = quiet
	}
}

// WithClient overrides the HTTP client.
func WithClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		d.client = client
	}
}

func New(source Source, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		quiet:  constants.SyncDebounce,
		client: &http.Client{},
		source: source,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current sync state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// NotifyChange restarts the debounce timer. Rapid successive mutations
// collapse to a single dispatch after the quiet period: last write wins,
// triggers do not accumulate.
func (d *Dispatcher) NotifyChange() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		if err := d.dispatch(); err != nil {
			// Unconfigured endpoint and an in-flight sync are both normal
			// on the automatic path; nothing to report.
			if !errors.Is(err, ErrNotConfigured) && !errors.Is(err, ErrSyncInFlight) {
				logger.Warn("Automatic sync failed", "error", err)
			}
		}
	})
}

// SyncNow dispatches immediately. It is rejected with ErrSyncInFlight if
// a sync is already running and with ErrNotConfigured when no endpoint is
// set; the caller decides how to surface those.
func (d *Dispatcher) SyncNow() error {
	return d.dispatch()
}

// Flush dispatches immediately when a debounced sync is still pending.
// One-shot commands call this on the way out, where the quiet period
// would outlive the process.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()

	if !pending {
		return
	}
	if err := d.dispatch(); err != nil {
		if !errors.Is(err, ErrNotConfigured) && !errors.Is(err, ErrSyncInFlight) {
			logger.Warn("Sync flush failed", "error", err)
		}
	}
}

// Cancel stops any pending debounce timer. It does not abort an already
// dispatched request.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Dispatcher) tryBegin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Syncing {
		return false
	}
	d.state = Syncing
	return true
}

func (d *Dispatcher) finish() {
	d.mu.Lock()
	d.state = Idle
	d.mu.Unlock()
}

func (d *Dispatcher) dispatch() error {
	endpoint := d.source.SyncEndpoint()
	if endpoint == "" {
		return ErrNotConfigured
	}

	if !d.tryBegin() {
		return ErrSyncInFlight
	}
	defer d.finish()

	payload, err := d.source.SyncPayload()
	if err != nil {
		return fmt.Errorf("failed to build sync payload: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize sync payload: %w", err)
	}

	// Cache-busting timestamp for spreadsheet web endpoints that cache GETs
	// on the same URL.
	url := fmt.Sprintf("%s?timestamp=%d", endpoint, time.Now().UnixMilli())

	resp, err := d.client.Post(url, "text/plain;charset=utf-8", bytes.NewReader(body))
	if err != nil {
		// Fire and forget: log, keep state untouched, never retry.
		logger.Warn("Sync push failed", "error", err)
		return nil
	}
	// The endpoint's write outcome is unobservable; the response is not
	// inspected.
	resp.Body.Close()

	logger.Debug("Sync dispatched", "endpoint", endpoint)
	return nil
}
