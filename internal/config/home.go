package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the config file looked up inside the search home directory.
const ConfigFileName = "config.yaml"

// GetSearchHome returns the search home directory
// Priority order:
//  1. SEARCH_HOME environment variable (if set)
//  2. ~/.search
//
// The directory is not created; a missing home simply means defaults.
func GetSearchHome() (string, error) {
	if home := os.Getenv("SEARCH_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".search"), nil
}

// DefaultConfigPath returns $SEARCH_HOME/config.yaml (or ~/.search/config.yaml).
func DefaultConfigPath() (string, error) {
	home, err := GetSearchHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// Load loads configuration from path, or from DefaultConfigPath when path is empty.
func Load(path string) (*Config, error) {
	if path != "" {
		cfg, err := LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		return cfg, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		// No resolvable home directory: fall back to defaults
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfig(defaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
