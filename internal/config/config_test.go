package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file was not created: %v", err)
	}

	if cfg.Backend.URL != "http://localhost:8000" {
		t.Errorf("backend.url = %q", cfg.Backend.URL)
	}
	if cfg.Backend.PollInterval != 2500*time.Millisecond {
		t.Errorf("backend.poll_interval = %v, want 2.5s", cfg.Backend.PollInterval)
	}
	if cfg.Backend.RequestTimeout != 15*time.Second {
		t.Errorf("backend.request_timeout = %v, want 15s", cfg.Backend.RequestTimeout)
	}
	if cfg.Player.Mode != "browser" {
		t.Errorf("player.mode = %q, want browser", cfg.Player.Mode)
	}
	if cfg.TranslationFallback.Enabled {
		t.Error("translation_fallback should be disabled by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[backend]
  url = "https://transcribe.example.com"
  request_timeout = "30s"
  poll_interval = "5s"

[player]
  mode = "mpv"
  mpv_socket = "/run/user/1000/mpv.sock"

[translation_fallback]
  enabled = true
  base_url = "https://api.deepseek.com/v1"
  api_key = "sk-test"
  model = "deepseek-chat"

[notifications]
  enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Backend.URL != "https://transcribe.example.com" {
		t.Errorf("backend.url = %q", cfg.Backend.URL)
	}
	if cfg.Backend.PollInterval != 5*time.Second {
		t.Errorf("poll_interval = %v, want 5s", cfg.Backend.PollInterval)
	}
	if cfg.Player.Mode != "mpv" || cfg.Player.MpvSocket != "/run/user/1000/mpv.sock" {
		t.Errorf("player = %+v", cfg.Player)
	}
	if !cfg.TranslationFallback.Enabled || cfg.TranslationFallback.Model != "deepseek-chat" {
		t.Errorf("translation_fallback = %+v", cfg.TranslationFallback)
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications should be disabled")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty backend url", func(c *Config) { c.Backend.URL = "" }},
		{"bad backend scheme", func(c *Config) { c.Backend.URL = "ftp://example.com" }},
		{"missing backend host", func(c *Config) { c.Backend.URL = "http://" }},
		{"zero request timeout", func(c *Config) { c.Backend.RequestTimeout = 0 }},
		{"zero poll interval", func(c *Config) { c.Backend.PollInterval = 0 }},
		{"bad player mode", func(c *Config) { c.Player.Mode = "vlc" }},
		{"mpv without socket", func(c *Config) {
			c.Player.Mode = "mpv"
			c.Player.MpvSocket = ""
		}},
		{"fallback without model", func(c *Config) {
			c.TranslationFallback.Enabled = true
			c.TranslationFallback.APIKey = "sk-test"
			c.TranslationFallback.Model = ""
		}},
		{"fallback without key", func(c *Config) {
			c.TranslationFallback.Enabled = true
			c.TranslationFallback.Model = "gpt-4o-mini"
		}},
		{"bad notification type", func(c *Config) {
			c.Notifications.Enabled = true
			c.Notifications.Type = "banner"
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DHVANI_BACKEND_URL", "")
			t.Setenv("DEEPSEEK_API_KEY", "")
			t.Setenv("OPENAI_API_KEY", "")

			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})
}

func TestBackendURLEnvOverride(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("DHVANI_BACKEND_URL", "http://backend.internal:9000")
	if got := cfg.BackendURL(); got != "http://backend.internal:9000" {
		t.Errorf("BackendURL() = %q", got)
	}
	if got := cfg.ToAPIConfig().BaseURL; got != "http://backend.internal:9000" {
		t.Errorf("ToAPIConfig().BaseURL = %q", got)
	}

	t.Setenv("DHVANI_BACKEND_URL", "")
	if got := cfg.BackendURL(); got != "http://localhost:8000" {
		t.Errorf("BackendURL() = %q, want config value", got)
	}
}

func TestToTranslatorConfigKeyFallback(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("DEEPSEEK_API_KEY", "sk-deepseek")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	if got := cfg.ToTranslatorConfig().APIKey; got != "sk-deepseek" {
		t.Errorf("APIKey = %q, want DEEPSEEK_API_KEY value", got)
	}

	t.Setenv("DEEPSEEK_API_KEY", "")
	if got := cfg.ToTranslatorConfig().APIKey; got != "sk-openai" {
		t.Errorf("APIKey = %q, want OPENAI_API_KEY value", got)
	}

	cfg.TranslationFallback.APIKey = "sk-config"
	if got := cfg.ToTranslatorConfig().APIKey; got != "sk-config" {
		t.Errorf("APIKey = %q, want config value", got)
	}
}
