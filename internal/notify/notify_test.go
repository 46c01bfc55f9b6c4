package notify

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	n := Log{}

	t.Run("TaskCompleted", func(t *testing.T) {
		buf.Reset()
		n.TaskCompleted(7)

		out := buf.String()
		if !strings.Contains(out, "transcript ready") || !strings.Contains(out, "7 segments") {
			t.Errorf("unexpected log output: %s", out)
		}
	})

	t.Run("TaskFailed", func(t *testing.T) {
		buf.Reset()
		n.TaskFailed("audio stream not found")

		out := buf.String()
		if !strings.Contains(out, "transcription failed") || !strings.Contains(out, "audio stream not found") {
			t.Errorf("unexpected log output: %s", out)
		}
	})
}

func TestNopNotifier(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	n := Nop{}
	n.TaskCompleted(3)
	n.TaskFailed("whatever")

	if buf.Len() != 0 {
		t.Errorf("Nop notifier produced output: %s", buf.String())
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		kind    string
		want    Notifier
	}{
		{"disabled", false, "desktop", Nop{}},
		{"desktop", true, "desktop", Desktop{}},
		{"log", true, "log", Log{}},
		{"none", true, "none", Nop{}},
		{"unknown", true, "banner", Nop{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.enabled, tc.kind); got != tc.want {
				t.Errorf("New(%v, %q) = %T, want %T", tc.enabled, tc.kind, got, tc.want)
			}
		})
	}
}
