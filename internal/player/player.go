// Package player seeks the video surface when a transcript entry is
// selected: a local mpv instance over its JSON IPC socket, or the
// embedded web player opened in a browser.
package player

import (
	"context"
	"errors"

	"github.com/kartikaysharma/dhvani/internal/config"
)

// ErrNoVideo is returned when no video identifier could be extracted, so
// there is nothing to seek.
var ErrNoVideo = errors.New("player: no video to seek")

// Player positions the video at a playback offset. exact requests a
// precise (non-keyframe) seek where the player supports it.
type Player interface {
	Seek(ctx context.Context, seconds int, exact bool) error
}

// FromConfig builds the player selected in the configuration for the
// given video identifier.
func FromConfig(cfg config.PlayerConfig, videoID string) Player {
	switch cfg.Mode {
	case "mpv":
		return NewMpv(cfg.MpvSocket)
	case "browser":
		return NewBrowser(videoID, cfg.BrowserCommand)
	default:
		return Nop{}
	}
}

// Nop ignores seeks. Used when the player surface is disabled.
type Nop struct{}

func (Nop) Seek(ctx context.Context, seconds int, exact bool) error { return nil }
