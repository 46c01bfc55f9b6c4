package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

const mpvResponseTimeout = 3 * time.Second

// Mpv seeks a running mpv instance over its --input-ipc-server socket.
type Mpv struct {
	socketPath string
}

func NewMpv(socketPath string) *Mpv {
	return &Mpv{socketPath: socketPath}
}

type mpvRequest struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id"`
}

type mpvResponse struct {
	Error     string `json:"error"`
	Event     string `json:"event"`
	RequestID int    `json:"request_id"`
}

func (m *Mpv) Seek(ctx context.Context, seconds int, exact bool) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", m.socketPath)
	if err != nil {
		return fmt.Errorf("player: dial mpv socket %s: %w", m.socketPath, err)
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(mpvResponseTimeout)
	}
	_ = conn.SetDeadline(deadline)

	mode := "absolute"
	if exact {
		mode = "absolute+exact"
	}

	payload, err := json.Marshal(mpvRequest{Command: []any{"seek", seconds, mode}, RequestID: 1})
	if err != nil {
		return fmt.Errorf("player: encode mpv command: %w", err)
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("player: write mpv command: %w", err)
	}

	// mpv interleaves async event lines with command replies; the reply is
	// the first line carrying an "error" field for our request.
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var resp mpvResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			continue
		}
		if resp.Event != "" {
			continue
		}
		if resp.Error != "success" {
			return fmt.Errorf("player: mpv seek failed: %s", resp.Error)
		}
		return nil
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("player: read mpv response: %w", err)
	}
	return fmt.Errorf("player: mpv closed the connection without a reply")
}
