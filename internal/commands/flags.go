package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/try/internal/core/config"
	"github.com/colonyops/try/internal/core/shellgen"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Path is the workspace root from --path or $TRY_PATH. Empty means
	// fall back to the configured root.
	Path string

	// Shell is the dialect source from --shell or $SHELL.
	Shell string

	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// Root resolves the workspace root: --path / $TRY_PATH wins, then the
// config file's path, which always carries a default.
func (f *Flags) Root() string {
	if f.Path != "" {
		return config.ExpandPath(f.Path)
	}
	return f.Config.Path
}

// RootEnvSet reports whether the root came from the flag or environment
// rather than configuration.
func (f *Flags) RootEnvSet() bool {
	return f.Path != ""
}

// Dialect resolves the shell dialect for script generation. An unset shell
// falls back to the posix dialect.
func (f *Flags) Dialect() (shellgen.Dialect, error) {
	if f.Shell == "" {
		return shellgen.Posix{}, nil
	}
	return shellgen.ForShell(f.Shell)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "try", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "try")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/try/try.log
// On Linux: $XDG_STATE_HOME/try/try.log (defaults to ~/.local/state/try/try.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "try", "try.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "try", "try.log")
	}

	return filepath.Join(home, ".local", "state", "try", "try.log")
}
