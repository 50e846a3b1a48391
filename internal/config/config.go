// Package config reads and writes the per-user auditking configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the flat auditking configuration.
type Config struct {
	Version string `json:"version"`
	// DBPath overrides the default database location when set.
	DBPath string `json:"db_path,omitempty"`
	// DefaultUnanswered leaves fresh yes/no answers blank instead of the
	// optimistic default-pass.
	DefaultUnanswered bool `json:"default_unanswered,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Version: "1.0"}
}

// Dir returns the configuration directory under the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".auditking"), nil
}

// LoadConfig reads config.json from the specified directory. A missing file
// yields the defaults; a malformed file is an error the caller should surface.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
