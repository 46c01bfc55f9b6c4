package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kartikaysharma/dhvani/internal/api"
	"github.com/kartikaysharma/dhvani/internal/config"
	"github.com/kartikaysharma/dhvani/internal/llm"
	"github.com/kartikaysharma/dhvani/internal/notify"
	"github.com/kartikaysharma/dhvani/internal/player"
	"github.com/kartikaysharma/dhvani/internal/session"
	"github.com/kartikaysharma/dhvani/internal/timecode"
	"github.com/kartikaysharma/dhvani/internal/transcript"
)

// segmentRows is how many terminal lines one transcript entry occupies.
const segmentRows = 4

type snapshotMsg session.Snapshot

type submitResultMsg struct{ err error }

type seekResultMsg struct{ err error }

type watchModel struct {
	manager *config.Manager
	sess    *session.Session

	snap     session.Snapshot
	input    textinput.Model
	prog     progress.Model
	vp       viewport.Model
	selected int
	entering bool
	seekErr  error
	width    int
	height   int
}

func newWatchModel(manager *config.Manager, sess *session.Session, initialURL string) watchModel {
	input := textinput.New()
	input.Placeholder = "https://www.youtube.com/watch?v=..."
	input.Prompt = "URL> "
	input.CharLimit = 512
	input.SetValue(initialURL)
	entering := strings.TrimSpace(initialURL) == ""
	if entering {
		input.Focus()
	}

	prog := progress.New(progress.WithGradient(string(ColorSecondary), string(ColorPrimary)))

	return watchModel{
		manager:  manager,
		sess:     sess,
		snap:     sess.Snapshot(),
		input:    input,
		prog:     prog,
		vp:       viewport.New(80, 20),
		entering: entering,
	}
}

func (m watchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForUpdate(m.sess.Updates()), textinput.Blink}
	if strings.TrimSpace(m.input.Value()) != "" {
		cmds = append(cmds, m.submit(m.input.Value()))
	}
	return tea.Batch(cmds...)
}

// waitForUpdate bridges the session's snapshot channel into the program.
func waitForUpdate(ch <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-ch)
	}
}

func (m watchModel) submit(url string) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{err: m.sess.Submit(context.Background(), url)}
	}
}

// seek drives the configured player to the selected segment's timestamp.
// Player settings are read per seek so config edits apply immediately.
func (m watchModel) seek(seg transcript.Segment) tea.Cmd {
	cfg := m.manager.GetConfig()
	videoID := m.snap.VideoID
	return func() tea.Msg {
		seconds, err := timecode.Parse(seg.StartTime)
		if err != nil {
			if seg.StartSeconds > 0 {
				seconds = int(seg.StartSeconds)
			} else {
				return seekResultMsg{err: err}
			}
		}
		p := player.FromConfig(cfg.Player, videoID)
		return seekResultMsg{err: p.Seek(context.Background(), seconds, true)}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prog.Width = min(msg.Width-20, 50)
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-8, 3)
		m.vp.SetContent(m.renderSegments())
		return m, nil

	case snapshotMsg:
		m.snap = session.Snapshot(msg)
		if n := len(m.snap.Segments); m.selected >= n && n > 0 {
			m.selected = n - 1
		}
		m.vp.SetContent(m.renderSegments())
		return m, waitForUpdate(m.sess.Updates())

	case submitResultMsg:
		// Submission failures already flow back as a Failed snapshot.
		if msg.err != nil {
			log.Printf("tui: submit: %v", msg.err)
		}
		return m, nil

	case seekResultMsg:
		m.seekErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.entering {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.entering {
		switch msg.String() {
		case "enter":
			url := strings.TrimSpace(m.input.Value())
			if url == "" {
				return m, nil
			}
			m.entering = false
			m.input.Blur()
			m.selected = 0
			m.seekErr = nil
			return m, m.submit(url)
		case "esc":
			if m.snap.State != session.Idle {
				m.entering = false
				m.input.Blur()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		m.sess.Cancel()
		m.entering = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "j", "down":
		if m.selected < len(m.snap.Segments)-1 {
			m.selected++
			m.scrollToSelection()
			m.vp.SetContent(m.renderSegments())
		}
		return m, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.scrollToSelection()
			m.vp.SetContent(m.renderSegments())
		}
		return m, nil
	case "g":
		m.selected = 0
		m.vp.GotoTop()
		m.vp.SetContent(m.renderSegments())
		return m, nil
	case "G":
		if n := len(m.snap.Segments); n > 0 {
			m.selected = n - 1
			m.scrollToSelection()
			m.vp.SetContent(m.renderSegments())
		}
		return m, nil
	case "enter":
		if m.selected < len(m.snap.Segments) {
			m.seekErr = nil
			return m, m.seek(m.snap.Segments[m.selected])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// scrollToSelection keeps the selected entry inside the viewport.
func (m *watchModel) scrollToSelection() {
	top := m.selected * segmentRows
	bottom := top + segmentRows
	if top < m.vp.YOffset {
		m.vp.SetYOffset(top)
	} else if bottom > m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(bottom - m.vp.Height)
	}
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("dhvani"))
	b.WriteString("  ")
	b.WriteString(renderState(m.snap.State))
	if m.snap.VideoID != "" {
		b.WriteString(StyleMuted.Render("  " + m.snap.VideoID))
	}
	b.WriteString("\n")

	if m.snap.State == session.Polling && m.snap.Progress.Total > 0 {
		b.WriteString(m.prog.ViewAs(float64(m.snap.Progress.Percent) / 100))
		b.WriteString(StyleMuted.Render(fmt.Sprintf(" %d/%d chunks", m.snap.Progress.Processed, m.snap.Progress.Total)))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	switch {
	case m.snap.State == session.Failed && m.snap.BackendError != "":
		b.WriteString(StyleError.Render("processing failed: " + m.snap.BackendError))
		b.WriteString("\n")
	case m.snap.State == session.Failed && m.snap.LastErr != nil:
		b.WriteString(StyleError.Render(m.snap.LastErr.Error()))
		b.WriteString("\n")
	case m.snap.LastErr != nil:
		b.WriteString(StyleError.Render("backend unreachable, retrying: " + m.snap.LastErr.Error()))
		b.WriteString("\n")
	case m.seekErr != nil:
		b.WriteString(StyleError.Render("seek failed: " + m.seekErr.Error()))
		b.WriteString("\n")
	default:
		b.WriteString("\n")
	}

	if m.entering {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(StyleHelp.Render("enter submit • esc back • ctrl+c quit"))
		return b.String()
	}

	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("j/k move • enter play from here • n new video • q quit"))
	return b.String()
}

func (m watchModel) renderSegments() string {
	if len(m.snap.Segments) == 0 {
		if m.snap.State == session.Polling {
			return StyleMuted.Render("waiting for the first transcript segments...")
		}
		return StyleMuted.Render("no transcript yet")
	}

	var b strings.Builder
	for i, seg := range m.snap.Segments {
		b.WriteString(renderSegment(seg, i == m.selected))
	}
	return b.String()
}

// renderSegment renders one transcript entry as a fixed number of lines so
// selection can be mapped to a viewport offset.
func renderSegment(seg transcript.Segment, selected bool) string {
	marker := "  "
	english := seg.English
	if selected {
		marker = StyleSelected.Render("> ")
		english = StyleSelected.Render(seg.English)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s  %s\n", marker, StyleTimestamp.Render("["+seg.StartTime+"]"), english)
	fmt.Fprintf(&b, "  %s\n", StylePronunciation.Render(seg.PronunciationHindi))
	fmt.Fprintf(&b, "  %s\n\n", StyleTranslation.Render(seg.TranslationHindi))
	return b.String()
}

func renderState(state session.State) string {
	switch state {
	case session.Submitting:
		return StyleStatePolling.Render("submitting")
	case session.Polling:
		return StyleStatePolling.Render("processing")
	case session.Completed:
		return StyleStateDone.Render("completed")
	case session.Failed:
		return StyleStateFailed.Render("failed")
	default:
		return StyleMuted.Render("idle")
	}
}

// RunWatch wires a session from the current configuration and runs the
// interactive transcript viewer until the user quits.
func RunWatch(manager *config.Manager, initialURL string) error {
	cfg := manager.GetConfig()

	client := api.New(cfg.ToAPIConfig())

	var translator session.Translator
	if cfg.TranslationFallback.Enabled {
		tr, err := llm.NewOpenAITranslator(cfg.ToTranslatorConfig())
		if err != nil {
			log.Printf("tui: translation fallback disabled: %v", err)
		} else {
			translator = tr
		}
	}

	sess := session.New(client, session.Config{
		PollInterval: cfg.Backend.PollInterval,
		Translator:   translator,
		Notifier:     notify.New(cfg.Notifications.Enabled, cfg.Notifications.Type),
	})
	defer sess.Stop()

	m := newWatchModel(manager, sess, initialURL)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
