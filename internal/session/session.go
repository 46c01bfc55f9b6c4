// Package session drives one transcription run: submission, the polling
// loop, and the accumulated view state consumed by the UI.
package session

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/kartikaysharma/dhvani/internal/api"
	"github.com/kartikaysharma/dhvani/internal/notify"
	"github.com/kartikaysharma/dhvani/internal/transcript"
	"github.com/kartikaysharma/dhvani/internal/videoid"
)

// State is the lifecycle of a session.
type State string

const (
	Idle       State = "idle"
	Submitting State = "submitting"
	Polling    State = "polling"
	Completed  State = "completed"
	Failed     State = "failed"
)

// DefaultPollInterval matches the backend's chunk cadence.
const DefaultPollInterval = 2500 * time.Millisecond

var (
	// ErrEmptyURL is returned when Submit is called without a URL.
	ErrEmptyURL = errors.New("session: url is empty")
	// ErrTaskRunning is returned when Submit or Resume is called while a
	// task is already being processed.
	ErrTaskRunning = errors.New("session: a task is already running")
)

// Translator re-translates segments whose backend translation failed.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Progress is the backend's chunk progress as a percentage.
type Progress struct {
	Processed int
	Total     int
	Percent   int
}

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	State        State
	URL          string
	TaskID       string
	VideoID      string
	Progress     Progress
	Segments     []transcript.Segment
	LastErr      error
	BackendError string
}

// Config holds session settings.
type Config struct {
	PollInterval time.Duration
	Translator   Translator
	Notifier     notify.Notifier
}

// Session owns the state of one processing run at a time. All mutation
// goes through its transition methods; responses from superseded tasks
// are rejected by comparing against the active task handle.
type Session struct {
	client     *api.Client
	interval   time.Duration
	translator Translator
	notifier   notify.Notifier

	mu         sync.RWMutex
	state      State
	url        string
	taskID     string
	videoID    string
	progress   Progress
	acc        *transcript.Accumulator
	lastErr    error
	backendErr string
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	events chan Snapshot
}

// New creates an idle session over the given backend client.
func New(client *api.Client, cfg Config) *Session {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Session{
		client:     client,
		interval:   interval,
		translator: cfg.Translator,
		notifier:   notifier,
		state:      Idle,
		events:     make(chan Snapshot, 64),
	}
}

// Updates streams a snapshot after every state change. Slow consumers
// lose intermediate snapshots, never the latest one.
func (s *Session) Updates() <-chan Snapshot {
	return s.events
}

// Snapshot returns the current view state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:        s.state,
		URL:          s.url,
		TaskID:       s.taskID,
		VideoID:      s.videoID,
		Progress:     s.progress,
		LastErr:      s.lastErr,
		BackendError: s.backendErr,
	}
	if s.acc != nil {
		snap.Segments = s.acc.Segments()
	}
	return snap
}

// Submit sends the URL to the backend and starts the polling loop for the
// returned task handle. It refuses empty URLs and concurrent runs.
func (s *Session) Submit(ctx context.Context, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ErrEmptyURL
	}

	s.mu.Lock()
	if s.state == Submitting || s.state == Polling {
		s.mu.Unlock()
		return ErrTaskRunning
	}
	s.supersedeLocked()
	s.state = Submitting
	s.url = rawURL
	if id, err := videoid.Extract(rawURL); err == nil {
		s.videoID = id
	} else {
		s.videoID = ""
	}
	s.mu.Unlock()
	s.publish()

	log.Printf("session: submitting %s", rawURL)
	taskID, err := s.client.StartProcessing(ctx, rawURL)
	if err != nil {
		log.Printf("session: submission failed: %v", err)
		s.mu.Lock()
		s.state = Failed
		s.lastErr = err
		s.mu.Unlock()
		s.publish()
		return err
	}

	s.startPolling(taskID)
	return nil
}

// Resume attaches to an already submitted task handle and starts polling.
func (s *Session) Resume(taskID string) error {
	if taskID == "" {
		return errors.New("session: task id is empty")
	}

	s.mu.Lock()
	if s.state == Submitting || s.state == Polling {
		s.mu.Unlock()
		return ErrTaskRunning
	}
	s.supersedeLocked()
	s.mu.Unlock()

	s.startPolling(taskID)
	return nil
}

// supersedeLocked cancels any previous polling loop and clears the state
// of the previous run. Callers hold s.mu.
func (s *Session) supersedeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.taskID = ""
	s.videoID = ""
	s.acc = nil
	s.progress = Progress{}
	s.lastErr = nil
	s.backendErr = ""
}

func (s *Session) startPolling(taskID string) {
	runCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.taskID = taskID
	s.acc = transcript.NewAccumulator(taskID)
	s.state = Polling
	s.cancel = cancel
	acc := s.acc
	s.mu.Unlock()
	s.publish()

	log.Printf("session: polling task %s every %v", taskID, s.interval)
	s.wg.Add(1)
	go s.run(runCtx, taskID, acc)
}

// Cancel abandons the current run and returns the session to Idle so a
// new URL can be submitted.
func (s *Session) Cancel() {
	s.Stop()

	s.mu.Lock()
	s.supersedeLocked()
	s.state = Idle
	s.url = ""
	s.mu.Unlock()
	s.publish()
}

// Stop tears down the polling loop. At most one loop exists per task
// handle, and none after Stop returns.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Session) run(ctx context.Context, taskID string, acc *transcript.Accumulator) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.tick(ctx, taskID, acc) {
				return
			}
		}
	}
}

// tick runs one poll cycle. Fetch errors are logged and polling continues
// on the next tick; true is returned once the loop should stop.
func (s *Session) tick(ctx context.Context, taskID string, acc *transcript.Accumulator) bool {
	status, err := s.client.TaskStatus(ctx, taskID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		log.Printf("session: status fetch failed for task %s: %v", taskID, err)
		s.recordTickError(taskID, err)
		return false
	}
	s.applyStatus(taskID, status)

	page, err := s.client.Transcript(ctx, taskID, acc.Cursor())
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		log.Printf("session: transcript fetch failed for task %s: %v", taskID, err)
		s.recordTickError(taskID, err)
	} else if added, err := acc.Append(taskID, page); err != nil {
		log.Printf("session: %v", err)
		return true
	} else if len(added) > 0 {
		log.Printf("session: task %s: %d new segments (%d total)", taskID, len(added), acc.Len())
		s.clearTickError(taskID)
		s.publish()
		s.retranslate(ctx, taskID, acc, added)
	}

	switch status.Status {
	case api.StatusCompleted:
		log.Printf("session: task %s completed with %d segments", taskID, acc.Len())
		s.finish(taskID, Completed, "")
		return true
	case api.StatusFailed:
		log.Printf("session: task %s failed: %s", taskID, status.Error)
		s.finish(taskID, Failed, status.Error)
		return true
	}
	return false
}

// applyStatus folds a status response into the session unless the task
// handle was superseded while the request was in flight.
func (s *Session) applyStatus(taskID string, status api.TaskStatus) {
	s.mu.Lock()
	if s.taskID != taskID {
		s.mu.Unlock()
		log.Printf("session: dropping stale status response for task %s", taskID)
		return
	}
	if status.TotalChunks > 0 {
		s.progress = Progress{
			Processed: status.ProcessedChunks,
			Total:     status.TotalChunks,
			Percent:   int(math.Round(float64(status.ProcessedChunks) / float64(status.TotalChunks) * 100)),
		}
	}
	if s.videoID == "" && status.VideoID != "" {
		s.videoID = status.VideoID
	}
	s.mu.Unlock()
	s.publish()
}

func (s *Session) recordTickError(taskID string, err error) {
	s.mu.Lock()
	if s.taskID != taskID {
		s.mu.Unlock()
		return
	}
	s.lastErr = err
	s.mu.Unlock()
	s.publish()
}

func (s *Session) clearTickError(taskID string) {
	s.mu.Lock()
	if s.taskID == taskID {
		s.lastErr = nil
	}
	s.mu.Unlock()
}

func (s *Session) finish(taskID string, state State, backendErr string) {
	s.mu.Lock()
	if s.taskID != taskID {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.backendErr = backendErr
	count := 0
	if s.acc != nil {
		count = s.acc.Len()
	}
	s.mu.Unlock()
	s.publish()

	switch state {
	case Completed:
		go s.notifier.TaskCompleted(count)
	case Failed:
		go s.notifier.TaskFailed(backendErr)
	}
}

// retranslate patches segments the backend could not translate, using the
// configured local fallback. Failures keep the backend's placeholder.
func (s *Session) retranslate(ctx context.Context, taskID string, acc *transcript.Accumulator, added []transcript.Segment) {
	if s.translator == nil {
		return
	}
	for _, seg := range added {
		if seg.TranslationHindi != api.TranslationUnavailable {
			continue
		}
		text, err := s.translator.Translate(ctx, seg.English)
		if err != nil {
			log.Printf("session: translation fallback failed for segment %d: %v", seg.Seq, err)
			continue
		}
		if acc.TaskID() == taskID && acc.SetTranslation(seg.Seq, text) {
			log.Printf("session: translation fallback patched segment %d", seg.Seq)
			s.publish()
		}
	}
}

// publish pushes the current snapshot, dropping the oldest pending one
// when the consumer lags.
func (s *Session) publish() {
	snap := s.Snapshot()
	for {
		select {
		case s.events <- snap:
			return
		default:
			select {
			case <-s.events:
			default:
			}
		}
	}
}
