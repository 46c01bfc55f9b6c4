package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles for dhvani TUI components
var (
	// Header style for the title bar
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// State badge styles
	StyleStatePolling = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStateDone = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StyleStateFailed = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	// Error style for error messages
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Timestamp style for transcript entries
	StyleTimestamp = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Selected style for the focused transcript entry
	StyleSelected = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Pronunciation style (Devanagari phonetic line)
	StylePronunciation = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Italic(true)

	// Translation style (Hindi line)
	StyleTranslation = lipgloss.NewStyle().
				Foreground(ColorText)

	// Help style for the key hint footer
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

const wordmarkASCII = `
     _ _                      _
  __| | |____   ____ _ _ __  (_)
 / _` + "`" + ` | '_ \ \ / / _` + "`" + ` | '_ \ | |
| (_| | | | \ V / (_| | | | || |
 \__,_|_| |_|\_/ \__,_|_| |_||_|`

// Wordmark returns the dhvani ASCII art
func Wordmark() string {
	return StyleHeader.Render(strings.Trim(wordmarkASCII, "\n"))
}
