package config

import (
	"fmt"
	"net/url"
)

func (c *Config) Validate() error {
	// Backend
	backendURL := c.BackendURL()
	if backendURL == "" {
		return fmt.Errorf("invalid backend.url: empty")
	}
	parsed, err := url.Parse(backendURL)
	if err != nil {
		return fmt.Errorf("invalid backend.url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid backend.url: %s (must use http or https)", backendURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid backend.url: %s (missing host)", backendURL)
	}
	if c.Backend.RequestTimeout <= 0 {
		return fmt.Errorf("invalid backend.request_timeout: %v", c.Backend.RequestTimeout)
	}
	if c.Backend.PollInterval <= 0 {
		return fmt.Errorf("invalid backend.poll_interval: %v", c.Backend.PollInterval)
	}

	// Player
	validModes := map[string]bool{"mpv": true, "browser": true, "none": true}
	if !validModes[c.Player.Mode] {
		return fmt.Errorf("invalid player.mode: %s (must be mpv, browser, or none)", c.Player.Mode)
	}
	if c.Player.Mode == "mpv" && c.Player.MpvSocket == "" {
		return fmt.Errorf("invalid player.mpv_socket: empty (required for mpv mode)")
	}

	// Translation fallback
	if c.TranslationFallback.Enabled {
		if c.TranslationFallback.Model == "" {
			return fmt.Errorf("invalid translation_fallback.model: empty")
		}
		if c.ToTranslatorConfig().APIKey == "" {
			return fmt.Errorf("translation fallback API key required: not found in config (translation_fallback.api_key) or environment (DEEPSEEK_API_KEY, OPENAI_API_KEY)")
		}
	}

	// Notifications
	if c.Notifications.Enabled {
		validTypes := map[string]bool{"desktop": true, "log": true, "none": true}
		if !validTypes[c.Notifications.Type] {
			return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
		}
	}

	return nil
}
