package config

import "time"

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:            "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
			PollInterval:   2500 * time.Millisecond,
		},
		Player: PlayerConfig{
			Mode:      "browser",
			MpvSocket: "/tmp/mpvsocket",
		},
		TranslationFallback: TranslationFallbackConfig{
			Enabled: false,
			Model:   "gpt-4o-mini",
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Type:    "desktop",
		},
	}
}
