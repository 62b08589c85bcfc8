package sync

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	stdsync "sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu       stdsync.Mutex
	endpoint string
	payload  map[string]any
}

func (f *fakeSource) SyncEndpoint() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.endpoint
}

func (f *fakeSource) SyncPayload() (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payload, nil
}

func (f *fakeSource) setEndpoint(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endpoint = url
}

type capture struct {
	mu          stdsync.Mutex
	requests    int
	contentType string
	hasTimestamp bool
	body        []byte
}

func newCaptureServer(t *testing.T) (*capture, *httptest.Server) {
	t.Helper()
	cap := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		cap.mu.Lock()
		cap.requests++
		cap.contentType = r.Header.Get("Content-Type")
		cap.hasTimestamp = r.URL.Query().Get("timestamp") != ""
		cap.body = body
		cap.mu.Unlock()
	}))
	t.Cleanup(server.Close)
	return cap, server
}

func TestNotifyChange_CoalescesIntoOneDispatch(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{endpoint: server.URL, payload: map[string]any{"water": 3.0}}
	d := New(source, WithQuietPeriod(50*time.Millisecond))

	// Five rapid mutations restart the timer each time.
	for i := 0; i < 5; i++ {
		d.NotifyChange()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if cap.requests != 1 {
		t.Errorf("got %d dispatches, want 1 coalesced dispatch", cap.requests)
	}
}

func TestNotifyChange_NothingBeforeQuietPeriod(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{endpoint: server.URL, payload: map[string]any{}}
	d := New(source, WithQuietPeriod(200*time.Millisecond))

	d.NotifyChange()
	time.Sleep(50 * time.Millisecond)

	cap.mu.Lock()
	got := cap.requests
	cap.mu.Unlock()
	if got != 0 {
		t.Errorf("dispatched %d times before the quiet period elapsed", got)
	}

	d.Cancel()
}

func TestSyncNow_RequestShape(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{
		endpoint: server.URL,
		payload:  map[string]any{"userId": "abc", "water": 3.0, "waterGoal": 8.0},
	}
	d := New(source)

	if err := d.SyncNow(); err != nil {
		t.Fatalf("SyncNow failed: %v", err)
	}

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if cap.requests != 1 {
		t.Fatalf("got %d requests, want 1", cap.requests)
	}
	if cap.contentType != "text/plain;charset=utf-8" {
		t.Errorf("content type = %q, want text/plain;charset=utf-8", cap.contentType)
	}
	if !cap.hasTimestamp {
		t.Error("request is missing the timestamp cache-buster")
	}

	var got map[string]any
	if err := json.Unmarshal(cap.body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got["userId"] != "abc" || got["water"] != 3.0 || got["waterGoal"] != 8.0 {
		t.Errorf("payload = %v", got)
	}
}

func TestSyncNow_NotConfigured(t *testing.T) {
	d := New(&fakeSource{})
	if err := d.SyncNow(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("got %v, want ErrNotConfigured", err)
	}
}

func TestSyncNow_RejectedWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	}))
	defer server.Close()
	defer close(release)

	source := &fakeSource{endpoint: server.URL, payload: map[string]any{}}
	d := New(source)

	firstDone := make(chan error, 1)
	go func() { firstDone <- d.SyncNow() }()

	<-entered
	if d.State() != Syncing {
		t.Error("state should be Syncing while the request is in flight")
	}
	if err := d.SyncNow(); !errors.Is(err, ErrSyncInFlight) {
		t.Errorf("concurrent SyncNow = %v, want ErrSyncInFlight", err)
	}

	release <- struct{}{}
	if err := <-firstDone; err != nil {
		t.Errorf("first SyncNow failed: %v", err)
	}
	if d.State() != Idle {
		t.Error("state should return to Idle after dispatch")
	}
}

func TestDispatch_NetworkFailureIsSwallowed(t *testing.T) {
	// Endpoint refuses connections: fire-and-forget means no error and a
	// state back at Idle.
	source := &fakeSource{endpoint: "http://127.0.0.1:1", payload: map[string]any{}}
	d := New(source, WithClient(&http.Client{Timeout: 500 * time.Millisecond}))

	if err := d.SyncNow(); err != nil {
		t.Errorf("SyncNow after network failure = %v, want nil", err)
	}
	if d.State() != Idle {
		t.Error("state should be Idle after a failed dispatch")
	}
}

func TestFlush_DispatchesPendingDebounce(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{endpoint: server.URL, payload: map[string]any{}}
	d := New(source, WithQuietPeriod(time.Hour))

	d.NotifyChange()
	d.Flush()

	cap.mu.Lock()
	got := cap.requests
	cap.mu.Unlock()
	if got != 1 {
		t.Errorf("got %d dispatches after flush, want 1", got)
	}
}

func TestFlush_NoOpWithoutPendingTimer(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{endpoint: server.URL, payload: map[string]any{}}
	d := New(source)

	d.Flush()

	cap.mu.Lock()
	got := cap.requests
	cap.mu.Unlock()
	if got != 0 {
		t.Errorf("flush with no pending timer dispatched %d times", got)
	}
}

func TestCancel_StopsPendingDispatch(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{endpoint: server.URL, payload: map[string]any{}}
	d := New(source, WithQuietPeriod(50*time.Millisecond))

	d.NotifyChange()
	d.Cancel()
	time.Sleep(150 * time.Millisecond)

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if cap.requests != 0 {
		t.Errorf("cancelled dispatch still went out %d times", cap.requests)
	}
}

func TestNotifyChange_EndpointReadAtDispatchTime(t *testing.T) {
	cap, server := newCaptureServer(t)
	source := &fakeSource{payload: map[string]any{}}
	d := New(source, WithQuietPeriod(50*time.Millisecond))

	// Unconfigured at scheduling time, configured before the timer fires.
	d.NotifyChange()
	source.setEndpoint(server.URL)

	time.Sleep(200 * time.Millisecond)

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if cap.requests != 1 {
		t.Errorf("got %d dispatches, want 1 using the late-bound endpoint", cap.requests)
	}
}
