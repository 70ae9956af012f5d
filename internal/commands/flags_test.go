package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/try/internal/core/config"
	"github.com/colonyops/try/internal/core/shellgen"
)

func TestFlagsRoot_PathWins(t *testing.T) {
	flags := &Flags{
		Path:   "/tmp/override",
		Config: &config.Config{Path: "/home/u/src/tries"},
	}

	assert.Equal(t, "/tmp/override", flags.Root())
	assert.True(t, flags.RootEnvSet())
}

func TestFlagsRoot_FallsBackToConfig(t *testing.T) {
	flags := &Flags{
		Config: &config.Config{Path: "/home/u/src/tries"},
	}

	assert.Equal(t, "/home/u/src/tries", flags.Root())
	assert.False(t, flags.RootEnvSet())
}

func TestFlagsRoot_ExpandsTilde(t *testing.T) {
	t.Setenv("HOME", "/home/u")

	flags := &Flags{Path: "~/elsewhere", Config: &config.Config{}}

	assert.Equal(t, "/home/u/elsewhere", flags.Root())
}

func TestFlagsDialect(t *testing.T) {
	tests := []struct {
		name    string
		shell   string
		want    string
		wantErr bool
	}{
		{name: "unset defaults to posix", shell: "", want: "posix"},
		{name: "zsh path", shell: "/bin/zsh", want: "posix"},
		{name: "fish", shell: "fish", want: "fish"},
		{name: "unknown shell", shell: "powershell", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := &Flags{Shell: tt.shell}

			d, err := flags.Dialect()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestFlagsDialect_PosixIsDefault(t *testing.T) {
	flags := &Flags{}

	d, err := flags.Dialect()
	require.NoError(t, err)
	assert.IsType(t, shellgen.Posix{}, d)
}

func TestDefaultPaths_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "try", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/xdg/data", "try"), DefaultDataDir())
	assert.Equal(t, filepath.Join("/xdg/state", "try", "try.log"), DefaultLogFile())
}

func TestDefaultPaths_HomeFallback(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	assert.Equal(t, filepath.Join("/home/u", ".config", "try", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/home/u", ".local", "share", "try"), DefaultDataDir())
}
