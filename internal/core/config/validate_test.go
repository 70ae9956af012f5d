package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Path:        dir,
		HistoryFile: filepath.Join(dir, "workspaces"),
		Theme:       "tokyo-night",
		DataDir:     dir,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Theme = "solarized-disco" },
			wantErr: "unknown theme",
		},
		{
			name:    "relative path",
			mutate:  func(c *Config) { c.Path = "src/tries" },
			wantErr: "must be absolute",
		},
		{
			name:    "relative history file",
			mutate:  func(c *Config) { c.HistoryFile = "workspaces" },
			wantErr: "must be absolute",
		},
		{
			name:    "invalid ignore glob",
			mutate:  func(c *Config) { c.Scan.Ignore = []string{"[unclosed"} },
			wantErr: "invalid glob pattern",
		},
		{
			name:   "valid ignore globs",
			mutate: func(c *Config) { c.Scan.Ignore = []string{"node_modules", "**/tmp-*"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWarnings_ProxyNotOnPath(t *testing.T) {
	cfg := validConfig(t)
	cfg.Clone.Proxy = "definitely-not-a-real-binary-xyz --flag"

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Clone", warnings[0].Category)
	assert.Contains(t, warnings[0].Message, "definitely-not-a-real-binary-xyz")
}

func TestWarnings_CleanConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())
}
