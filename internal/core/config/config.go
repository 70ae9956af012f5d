// Package config handles configuration loading and validation for try.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/try/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	// Path is the workspace root used when $TRY_PATH is unset.
	Path string `yaml:"path"`
	// HistoryFile overrides the workspace history location.
	HistoryFile string `yaml:"history_file"`
	// Theme selects the picker palette.
	Theme   string      `yaml:"theme"`
	Scan    ScanConfig  `yaml:"scan"`
	Clone   CloneConfig `yaml:"clone"`
	DataDir string      `yaml:"-"` // set by caller, not from config file
}

// ScanConfig controls directory scanning under the workspace root.
type ScanConfig struct {
	// Ignore holds doublestar globs matched against directory basenames.
	Ignore []string `yaml:"ignore"`
}

// CloneConfig controls clone command generation.
type CloneConfig struct {
	// Proxy is prepended verbatim to git clone invocations when set.
	Proxy string `yaml:"proxy"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:  "~/src/tries",
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options and
// expands ~/ in path fields.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Path == "" {
		c.Path = defaults.Path
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.HistoryFile == "" && c.DataDir != "" {
		c.HistoryFile = filepath.Join(c.DataDir, "workspaces")
	}

	c.Path = ExpandPath(c.Path)
	c.HistoryFile = ExpandPath(c.HistoryFile)
}

// ExpandPath resolves a leading ~ or ~/ against the user home directory.
// Paths it cannot expand are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
