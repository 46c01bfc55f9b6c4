// Package notify raises desktop notifications for task lifecycle events.
package notify

import (
	"fmt"
	"log"
	"os/exec"
)

// Notifier announces the end of a processing run.
type Notifier interface {
	TaskCompleted(segments int)
	TaskFailed(msg string)
}

// New picks a notifier implementation by config type.
func New(enabled bool, kind string) Notifier {
	if !enabled {
		return Nop{}
	}
	switch kind {
	case "desktop":
		return Desktop{}
	case "log":
		return Log{}
	default:
		return Nop{}
	}
}

// Desktop sends notifications through notify-send.
type Desktop struct{}

func (Desktop) TaskCompleted(segments int) {
	cmd := exec.Command("notify-send", "-a", "Dhvani",
		"Transcript ready", fmt.Sprintf("%d segments transcribed and translated", segments))
	if err := cmd.Run(); err != nil {
		log.Printf("notify: failed to send notification: %v", err)
	}
}

func (Desktop) TaskFailed(msg string) {
	if msg == "" {
		msg = "processing failed"
	}
	cmd := exec.Command("notify-send", "-a", "Dhvani", "-u", "critical", "Transcription failed", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("notify: failed to send error notification: %v", err)
	}
}

// Log writes notifications to the component log instead of the desktop.
type Log struct{}

func (Log) TaskCompleted(segments int) {
	log.Printf("notify: Dhvani: transcript ready, %d segments", segments)
}

func (Log) TaskFailed(msg string) {
	log.Printf("notify: Dhvani: transcription failed: %s", msg)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) TaskCompleted(segments int) {}
func (Nop) TaskFailed(msg string)      {}
