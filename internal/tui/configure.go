package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kartikaysharma/dhvani/internal/config"
)

// ConfigureResult holds the outcome of the configuration wizard.
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

// RunConfigure walks the user through every configuration section and
// returns the edited config. The caller validates and saves it.
func RunConfigure(cfg *config.Config) (*ConfigureResult, error) {
	clearScreen()
	fmt.Println(Wordmark())
	fmt.Println()

	requestTimeout := cfg.Backend.RequestTimeout.String()
	pollInterval := cfg.Backend.PollInterval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend URL").
				Description("The transcription backend serving the processing API").
				Value(&cfg.Backend.URL),
			huh.NewInput().
				Title("Request timeout").
				Description("Per-request timeout, e.g. 15s").
				Validate(validateDuration).
				Value(&requestTimeout),
			huh.NewInput().
				Title("Poll interval").
				Description("How often to check for new transcript segments, e.g. 2.5s").
				Validate(validateDuration).
				Value(&pollInterval),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Video player").
				Description("How transcript timestamps seek the video").
				Options(
					huh.NewOption("mpv (JSON IPC socket)", "mpv"),
					huh.NewOption("Browser (embed URL)", "browser"),
					huh.NewOption("None (transcript only)", "none"),
				).
				Value(&cfg.Player.Mode),
			huh.NewInput().
				Title("mpv socket path").
				Description("Only used in mpv mode; start mpv with --input-ipc-server").
				Value(&cfg.Player.MpvSocket),
			huh.NewInput().
				Title("Browser command").
				Description("Leave empty for xdg-open").
				Value(&cfg.Player.BrowserCommand),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable translation fallback?").
				Description("Re-translate segments the backend could not translate, using a local LLM endpoint").
				Value(&cfg.TranslationFallback.Enabled),
			huh.NewInput().
				Title("Fallback base URL").
				Description("OpenAI-compatible endpoint; leave empty for api.openai.com").
				Value(&cfg.TranslationFallback.BaseURL),
			huh.NewInput().
				Title("Fallback API key").
				Description("Leave empty to use DEEPSEEK_API_KEY or OPENAI_API_KEY").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.TranslationFallback.APIKey),
			huh.NewInput().
				Title("Fallback model").
				Value(&cfg.TranslationFallback.Model),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable notifications?").
				Value(&cfg.Notifications.Enabled),
			huh.NewSelect[string]().
				Title("Notification type").
				Options(
					huh.NewOption("Desktop (notify-send)", "desktop"),
					huh.NewOption("Log only", "log"),
					huh.NewOption("None", "none"),
				).
				Value(&cfg.Notifications.Type),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return &ConfigureResult{Cancelled: true}, nil
		}
		return nil, err
	}

	// Validated above, parse errors cannot reach here.
	cfg.Backend.RequestTimeout, _ = time.ParseDuration(requestTimeout)
	cfg.Backend.PollInterval, _ = time.ParseDuration(pollInterval)

	return &ConfigureResult{Config: cfg}, nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration (use forms like 15s or 2.5s)")
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
