// Package initcmd handles shell integration: detecting the user's shell,
// locating its rc file, and installing the line that evaluates the wrapper.
package initcmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Shell represents a detected shell type.
type Shell string

const (
	ShellZsh  Shell = "zsh"
	ShellBash Shell = "bash"
	ShellFish Shell = "fish"
)

// ShellInfo contains detected shell information.
type ShellInfo struct {
	Name   Shell
	RCFile string
}

// DetectShell returns the user's shell and rc file path.
func DetectShell() (ShellInfo, error) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return ShellInfo{}, errors.New("SHELL environment variable not set")
	}

	shell := Shell(filepath.Base(shellPath))
	home, err := os.UserHomeDir()
	if err != nil {
		return ShellInfo{}, err
	}

	var rcFile string
	switch shell {
	case ShellZsh:
		rcFile = filepath.Join(home, ".zshrc")
	case ShellBash:
		rcFile = filepath.Join(home, ".bashrc")
		if _, err := os.Stat(rcFile); os.IsNotExist(err) {
			rcFile = filepath.Join(home, ".bash_profile")
		}
	case ShellFish:
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			base = filepath.Join(home, ".config")
		}
		rcFile = filepath.Join(base, "fish", "config.fish")
	default:
		return ShellInfo{Name: shell}, fmt.Errorf("unsupported shell: %s", shell)
	}

	return ShellInfo{Name: shell, RCFile: rcFile}, nil
}

// SourceLine returns the rc file line that loads the wrapper on shell start.
func (s Shell) SourceLine() string {
	if s == ShellFish {
		return "try init | source"
	}
	return `eval "$(try init)"`
}

// SourceLineExists checks whether the integration is already wired into the
// rc file.
func SourceLineExists(rcFile string) (bool, error) {
	content, err := os.ReadFile(rcFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return strings.Contains(string(content), "try init"), nil
}
