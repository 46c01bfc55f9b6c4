// Package videoid extracts YouTube video identifiers from user-supplied URLs.
package videoid

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoIdentifier is returned when the URL does not contain a recognizable
// video identifier. Callers treat this as "render without a video surface",
// not as a user-facing failure.
var ErrNoIdentifier = errors.New("videoid: no identifier found")

// Recognized link shapes: youtu.be/ID, /v/ID, /u/<char>/ID, /embed/ID,
// watch?v=ID and &v=ID, each followed by an 11-character identifier.
var idPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|/embed/|watch\?v=|&v=)([0-9A-Za-z_-]{11})(?:[^0-9A-Za-z_-]|$)`)

// Extract returns the 11-character video identifier embedded in rawURL.
func Extract(rawURL string) (string, error) {
	m := idPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", ErrNoIdentifier
	}
	return m[1], nil
}

// EmbedURL builds the embedded-player URL for a video identifier,
// starting playback at the given offset in seconds.
func EmbedURL(id string, startSeconds int) string {
	if startSeconds > 0 {
		return fmt.Sprintf("https://www.youtube.com/embed/%s?start=%d&autoplay=1", id, startSeconds)
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}
