// Package transcript accumulates incrementally fetched transcript segments
// for a single processing task.
package transcript

import (
	"errors"
	"sync"

	"github.com/kartikaysharma/dhvani/internal/api"
)

// ErrStaleTask is returned when a response from a superseded task tries to
// mutate the accumulator of a newer one.
var ErrStaleTask = errors.New("transcript: response belongs to a superseded task")

// Segment is one accumulated transcript unit. Seq is assigned client-side
// and is contiguous from 1; segments are immutable once appended, apart
// from the translation patch applied by SetTranslation.
type Segment struct {
	Seq                int
	Key                string
	StartTime          string
	EndTime            string
	StartSeconds       float64
	English            string
	PronunciationHindi string
	TranslationHindi   string
}

// Accumulator is the append-only transcript for one task handle. It keeps
// the pagination cursor in lockstep with the last appended segment.
type Accumulator struct {
	mu       sync.RWMutex
	taskID   string
	segments []Segment
	cursor   string
}

// NewAccumulator creates an empty accumulator bound to a task handle.
func NewAccumulator(taskID string) *Accumulator {
	return &Accumulator{taskID: taskID}
}

// TaskID returns the task handle this accumulator belongs to.
func (a *Accumulator) TaskID() string {
	return a.taskID
}

// Append adds one fetched page. taskID must match the handle the
// accumulator was created for; late responses from superseded tasks are
// rejected with ErrStaleTask. Sequence numbers continue from the current
// count in receipt order, and the cursor advances to the page's LastKey
// when the page is non-empty. It returns the appended segments.
func (a *Accumulator) Append(taskID string, page api.TranscriptPage) ([]Segment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if taskID != a.taskID {
		return nil, ErrStaleTask
	}
	if len(page.Sentences) == 0 {
		return nil, nil
	}

	added := make([]Segment, 0, len(page.Sentences))
	for _, s := range page.Sentences {
		seg := Segment{
			Seq:                len(a.segments) + 1,
			Key:                s.Key,
			StartTime:          s.StartTime,
			EndTime:            s.EndTime,
			StartSeconds:       s.StartSeconds,
			English:            s.English,
			PronunciationHindi: s.PronunciationHindi,
			TranslationHindi:   s.TranslationHindi,
		}
		a.segments = append(a.segments, seg)
		added = append(added, seg)
	}

	if page.LastKey != "" {
		a.cursor = page.LastKey
	} else {
		a.cursor = a.segments[len(a.segments)-1].Key
	}

	return added, nil
}

// SetTranslation patches the translation of the segment with the given
// sequence number. Used by the local translation fallback.
func (a *Accumulator) SetTranslation(seq int, text string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if seq < 1 || seq > len(a.segments) || text == "" {
		return false
	}
	a.segments[seq-1].TranslationHindi = text
	return true
}

// Segments returns a copy of the accumulated transcript.
func (a *Accumulator) Segments() []Segment {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// Len returns the number of accumulated segments.
func (a *Accumulator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.segments)
}

// Cursor returns the pagination cursor: the key of the most recently
// appended segment, or empty if nothing was received yet.
func (a *Accumulator) Cursor() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cursor
}
