// Package config persists user settings under ~/.reel.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// defaultAPIKey is an optional fallback TMDB key injected at build time:
//
//	go build -ldflags "-X github.com/dasunNimantha/reel/internal/config.defaultAPIKey=..."
var defaultAPIKey string

// Settings is the persisted application configuration.
type Settings struct {
	TMDBAPIKey       string `json:"tmdb_api_key"`
	TMDBLanguage     string `json:"tmdb_language"`
	Template         string `json:"template"`
	LastInputDir     string `json:"last_input_dir,omitempty"`
	LastOutputDir    string `json:"last_output_dir,omitempty"`
	EnableLogging    bool   `json:"enable_logging"`
	LogRetentionDays int    `json:"log_retention_days"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		TMDBLanguage:     "en-US",
		Template:         "Default",
		EnableLogging:    true,
		LogRetentionDays: 30,
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".reel", "config.json"), nil
}

// Load reads settings from disk, returning defaults if no file exists.
// Missing fields are filled with their default values.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := Default()
	if s.TMDBLanguage == "" {
		s.TMDBLanguage = defaults.TMDBLanguage
	}
	if s.Template == "" {
		s.Template = defaults.Template
	}
	if s.LogRetentionDays == 0 {
		s.LogRetentionDays = defaults.LogRetentionDays
	}

	return &s, nil
}

// Save writes the settings to disk, creating the config directory if needed.
func (s *Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EffectiveAPIKey returns the user-configured TMDB key, falling back to the
// build-time default when none is set.
func (s *Settings) EffectiveAPIKey() string {
	if s.TMDBAPIKey != "" {
		return s.TMDBAPIKey
	}
	return defaultAPIKey
}

// HasDefaultAPIKey reports whether a fallback key was compiled in.
func HasDefaultAPIKey() bool {
	return defaultAPIKey != ""
}
