package player

import (
	"context"
	"fmt"
	"log"
	"os/exec"

	"github.com/kartikaysharma/dhvani/internal/videoid"
)

// Browser opens the embedded web player at the requested offset. The
// exact flag is meaningless for the embed URL and is ignored.
type Browser struct {
	videoID string
	command string
}

func NewBrowser(videoID, command string) *Browser {
	if command == "" {
		command = "xdg-open"
	}
	return &Browser{videoID: videoID, command: command}
}

func (b *Browser) Seek(ctx context.Context, seconds int, exact bool) error {
	if b.videoID == "" {
		return ErrNoVideo
	}

	url := videoid.EmbedURL(b.videoID, seconds)
	log.Printf("player: opening %s", url)

	if err := exec.CommandContext(ctx, b.command, url).Run(); err != nil {
		return fmt.Errorf("player: open %s: %w", url, err)
	}
	return nil
}
