// Package testutil provides shared fixtures: a valid configuration and a
// scripted fake of the transcription backend.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kartikaysharma/dhvani/internal/api"
	"github.com/kartikaysharma/dhvani/internal/config"
)

// TestConfig returns a valid configuration for testing.
func TestConfig() *config.Config {
	return &config.Config{
		Backend: config.BackendConfig{
			URL:            "http://localhost:8000",
			RequestTimeout: 2 * time.Second,
			PollInterval:   10 * time.Millisecond,
		},
		Player: config.PlayerConfig{
			Mode:      "none",
			MpvSocket: "/tmp/mpvsocket",
		},
		TranslationFallback: config.TranslationFallbackConfig{
			Enabled: false,
			Model:   "gpt-4o-mini",
		},
		Notifications: config.NotificationsConfig{
			Enabled: true,
			Type:    "log",
		},
	}
}

// FakeBackend is a scripted stand-in for the transcription backend.
// Status responses and transcript pages are consumed in order; the last
// status repeats and exhausted pages become empty ones.
type FakeBackend struct {
	srv *httptest.Server

	mu                 sync.Mutex
	taskID             string
	statuses           []api.TaskStatus
	pages              []api.TranscriptPage
	startCalls         int
	lastKeys           []string
	failStatusOnce     bool
	failTranscriptOnce bool
}

// NewFakeBackend starts a fake backend that hands out taskID for every
// submission. The server is shut down with the test.
func NewFakeBackend(t *testing.T, taskID string) *FakeBackend {
	t.Helper()

	f := &FakeBackend{taskID: taskID}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the backend base URL.
func (f *FakeBackend) URL() string {
	return f.srv.URL
}

// Client returns an api client pointed at the fake backend.
func (f *FakeBackend) Client() *api.Client {
	return api.New(api.Config{BaseURL: f.srv.URL, Timeout: 2 * time.Second})
}

// QueueStatus appends a status response.
func (f *FakeBackend) QueueStatus(status api.TaskStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
}

// QueuePage appends a transcript page.
func (f *FakeBackend) QueuePage(page api.TranscriptPage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
}

// FailStatusOnce makes the next status request return a 500.
func (f *FakeBackend) FailStatusOnce() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failStatusOnce = true
}

// FailTranscriptOnce makes the next transcript request return a 500.
func (f *FakeBackend) FailTranscriptOnce() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failTranscriptOnce = true
}

// StartCalls returns how many submissions the backend received.
func (f *FakeBackend) StartCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.startCalls
}

// LastKeys returns the last_key parameter observed on each transcript
// request, with "" for requests that omitted it.
func (f *FakeBackend) LastKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.lastKeys))
	copy(out, f.lastKeys)
	return out
}

func (f *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/start_processing":
		f.mu.Lock()
		f.startCalls++
		taskID := f.taskID
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{"task_id": taskID})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/task_status/"):
		f.mu.Lock()
		if f.failStatusOnce {
			f.failStatusOnce = false
			f.mu.Unlock()
			http.Error(w, "backend unavailable", http.StatusInternalServerError)
			return
		}
		var status api.TaskStatus
		if len(f.statuses) == 0 {
			status = api.TaskStatus{Status: api.StatusProcessing}
		} else {
			status = f.statuses[0]
			if len(f.statuses) > 1 {
				f.statuses = f.statuses[1:]
			}
		}
		f.mu.Unlock()
		json.NewEncoder(w).Encode(status)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/transcript/"):
		f.mu.Lock()
		f.lastKeys = append(f.lastKeys, r.URL.Query().Get("last_key"))
		if f.failTranscriptOnce {
			f.failTranscriptOnce = false
			f.mu.Unlock()
			http.Error(w, "backend unavailable", http.StatusInternalServerError)
			return
		}
		page := api.TranscriptPage{Sentences: []api.Sentence{}}
		if len(f.pages) > 0 {
			page = f.pages[0]
			f.pages = f.pages[1:]
		}
		f.mu.Unlock()
		json.NewEncoder(w).Encode(page)

	default:
		http.NotFound(w, r)
	}
}
