package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/try/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("path", c.Path, absoluteDirPath),
		criterio.Run("history_file", c.HistoryFile, absoluteFilePath),
		c.validateIgnoreGlobs(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Clone.Proxy != "" {
		bin := strings.Fields(c.Clone.Proxy)[0]
		if _, err := exec.LookPath(bin); err != nil {
			warnings = append(warnings, ValidationWarning{
				Category: "Clone",
				Item:     "proxy",
				Message:  fmt.Sprintf("proxy command %q not found on PATH", bin),
			})
		}
	}

	if info, err := os.Stat(c.Path); err == nil && !info.IsDir() {
		warnings = append(warnings, ValidationWarning{
			Category: "Workspace",
			Item:     "path",
			Message:  fmt.Sprintf("%s exists but is not a directory", c.Path),
		})
	}

	return warnings
}

func knownTheme(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.GetPalette(name); ok {
		return nil
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
}

// absoluteDirPath validates a path that must be usable as a directory root.
// Relative paths would silently resolve against whatever the process cwd
// happens to be, so they are rejected after ~ expansion.
func absoluteDirPath(path string) error {
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("must be absolute or start with ~/, got %q", path)
	}
	return nil
}

func absoluteFilePath(path string) error {
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("must be absolute or start with ~/, got %q", path)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

func (c *Config) validateIgnoreGlobs() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Scan.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("scan.ignore[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}
	return errs.ToError()
}
