package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dhvaniDir := filepath.Join(configDir, "dhvani")
	if err := os.MkdirAll(dhvaniDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dhvaniDir, "config.toml"), nil
}

// Load reads the config file, creating it with defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("config: no config file at %s, creating with defaults", configPath)
		if err := writeDefaultConfig(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	log.Printf("config: loaded configuration from %s", configPath)
	return &config, nil
}

// Save writes the config back to the default path.
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func writeDefaultConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	configContent := `# Dhvani Configuration
# This file is automatically generated with defaults.
# Edit values as needed, or run "dhvani configure".

# Transcription backend
[backend]
  url = "http://localhost:8000"   # Backend base URL (or set DHVANI_BACKEND_URL)
  request_timeout = "15s"         # Per-request timeout
  poll_interval = "2.5s"          # How often status and transcript are polled

# How selecting a transcript line seeks the video
[player]
  mode = "browser"                # "mpv" (local player over IPC), "browser", or "none"
  mpv_socket = "/tmp/mpvsocket"   # mpv --input-ipc-server socket path
  browser_command = ""            # Opener command (empty = xdg-open)

# Local re-translation of sentences the backend failed to translate
[translation_fallback]
  enabled = false
  base_url = ""                   # OpenAI-compatible endpoint (empty = api.openai.com)
  api_key = ""                    # Or set DEEPSEEK_API_KEY / OPENAI_API_KEY
  model = "gpt-4o-mini"

# Desktop notification on task completion/failure
[notifications]
  enabled = true
  type = "desktop"                # "desktop", "log", "none"
`

	return os.WriteFile(configPath, []byte(configContent), 0644)
}
