package config

import (
	"os"
	"time"

	"github.com/kartikaysharma/dhvani/internal/api"
	"github.com/kartikaysharma/dhvani/internal/llm"
)

type Config struct {
	Backend             BackendConfig             `toml:"backend"`
	Player              PlayerConfig              `toml:"player"`
	TranslationFallback TranslationFallbackConfig `toml:"translation_fallback"`
	Notifications       NotificationsConfig       `toml:"notifications"`
}

// BackendConfig points at the transcription backend and sets the polling
// cadence.
type BackendConfig struct {
	URL            string        `toml:"url"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	PollInterval   time.Duration `toml:"poll_interval"`
}

// PlayerConfig selects how transcript clicks seek the video.
type PlayerConfig struct {
	Mode           string `toml:"mode"` // "mpv", "browser", "none"
	MpvSocket      string `toml:"mpv_socket"`
	BrowserCommand string `toml:"browser_command"` // empty = xdg-open
}

// TranslationFallbackConfig configures local re-translation of segments
// the backend could not translate. The endpoint is any OpenAI-compatible
// chat completions API.
type TranslationFallbackConfig struct {
	Enabled bool   `toml:"enabled"`
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Type    string `toml:"type"` // "desktop", "log", "none"
}

// BackendURL resolves the backend URL, preferring the environment
// override.
func (c *Config) BackendURL() string {
	if url := os.Getenv("DHVANI_BACKEND_URL"); url != "" {
		return url
	}
	return c.Backend.URL
}

func (c *Config) ToAPIConfig() api.Config {
	return api.Config{
		BaseURL: c.BackendURL(),
		Timeout: c.Backend.RequestTimeout,
	}
}

func (c *Config) ToTranslatorConfig() llm.Config {
	cfg := llm.Config{
		BaseURL: c.TranslationFallback.BaseURL,
		APIKey:  c.TranslationFallback.APIKey,
		Model:   c.TranslationFallback.Model,
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg
}
