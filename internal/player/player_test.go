package player

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/kartikaysharma/dhvani/internal/config"
)

// fakeMpv accepts one connection, records the first command line, and
// answers with the provided response lines.
func fakeMpv(t *testing.T, responses []string) (socketPath string, commands <-chan []any) {
	t.Helper()

	socketPath = filepath.Join(t.TempDir(), "mpv.sock")
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen on %s: %v", socketPath, err)
	}
	t.Cleanup(func() { ln.Close() })

	ch := make(chan []any, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		line, err := bufio.NewReader(conn).ReadBytes('\n')
		if err != nil {
			return
		}
		var req struct {
			Command []any `json:"command"`
		}
		if err := json.Unmarshal(line, &req); err == nil {
			ch <- req.Command
		}
		for _, resp := range responses {
			conn.Write([]byte(resp + "\n"))
		}
	}()

	return socketPath, ch
}

func TestMpvSeek(t *testing.T) {
	t.Run("exact seek", func(t *testing.T) {
		socketPath, commands := fakeMpv(t, []string{
			`{"event":"playback-restart"}`,
			`{"error":"success","request_id":1}`,
		})

		m := NewMpv(socketPath)
		if err := m.Seek(context.Background(), 65, true); err != nil {
			t.Fatalf("Seek: %v", err)
		}

		select {
		case cmd := <-commands:
			if len(cmd) != 3 || cmd[0] != "seek" || cmd[1] != float64(65) || cmd[2] != "absolute+exact" {
				t.Errorf("command = %v", cmd)
			}
		case <-time.After(time.Second):
			t.Fatal("no command received")
		}
	})

	t.Run("keyframe seek", func(t *testing.T) {
		socketPath, commands := fakeMpv(t, []string{`{"error":"success","request_id":1}`})

		m := NewMpv(socketPath)
		if err := m.Seek(context.Background(), 10, false); err != nil {
			t.Fatalf("Seek: %v", err)
		}

		cmd := <-commands
		if cmd[2] != "absolute" {
			t.Errorf("seek mode = %v, want absolute", cmd[2])
		}
	})

	t.Run("mpv error reply", func(t *testing.T) {
		socketPath, _ := fakeMpv(t, []string{`{"error":"invalid parameter","request_id":1}`})

		m := NewMpv(socketPath)
		if err := m.Seek(context.Background(), 10, true); err == nil {
			t.Error("expected error for mpv failure reply")
		}
	})

	t.Run("socket missing", func(t *testing.T) {
		m := NewMpv(filepath.Join(t.TempDir(), "nope.sock"))
		if err := m.Seek(context.Background(), 10, true); err == nil {
			t.Error("expected error for missing socket")
		}
	})
}

func TestBrowserSeekWithoutVideo(t *testing.T) {
	b := NewBrowser("", "")
	if err := b.Seek(context.Background(), 10, true); err != ErrNoVideo {
		t.Errorf("Seek without video = %v, want ErrNoVideo", err)
	}
}

func TestFromConfig(t *testing.T) {
	for _, tc := range []struct{ mode string }{{"mpv"}, {"browser"}, {"none"}} {
		t.Run(tc.mode, func(t *testing.T) {
			p := FromConfig(config.PlayerConfig{Mode: tc.mode, MpvSocket: "/tmp/mpv.sock"}, "dQw4w9WgXcQ")
			switch tc.mode {
			case "mpv":
				if _, ok := p.(*Mpv); !ok {
					t.Errorf("FromConfig(mpv) = %T", p)
				}
			case "browser":
				if _, ok := p.(*Browser); !ok {
					t.Errorf("FromConfig(browser) = %T", p)
				}
			default:
				if _, ok := p.(Nop); !ok {
					t.Errorf("FromConfig(none) = %T", p)
				}
			}
		})
	}
}
