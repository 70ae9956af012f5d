package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/colonyops/try/internal/core/config"
	"github.com/colonyops/try/internal/core/history"
	"github.com/colonyops/try/internal/core/shellgen"
	"github.com/colonyops/try/pkg/executil"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// ToolsCheck verifies that required external tools are available on $PATH.
type ToolsCheck struct {
	exec executil.Executor
}

// NewToolsCheck creates a new tools check.
func NewToolsCheck(exec executil.Executor) *ToolsCheck {
	return &ToolsCheck{exec: exec}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	// git is required: emitted clone and worktree scripts shell out to it
	path, err := lookPathFunc("git")
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "git",
			Status: StatusFail,
			Detail: "not found on PATH (clone and worktree scripts need it)",
		})
		return result
	}

	detail := path
	if out, verr := c.exec.Run(ctx, "git", "--version"); verr == nil {
		detail = strings.TrimSpace(string(out))
	}
	result.Items = append(result.Items, CheckItem{
		Label:  "git",
		Status: StatusPass,
		Detail: detail,
	})

	return result
}

// WorkspaceCheck verifies the resolved workspace root is usable.
type WorkspaceCheck struct {
	root   string
	envSet bool
}

// NewWorkspaceCheck creates a workspace check for the resolved root. envSet
// reports whether the root came from the governing environment variable.
func NewWorkspaceCheck(root string, envSet bool) *WorkspaceCheck {
	return &WorkspaceCheck{root: root, envSet: envSet}
}

func (c *WorkspaceCheck) Name() string {
	return "Workspace"
}

func (c *WorkspaceCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.envSet {
		result.Items = append(result.Items, CheckItem{
			Label:  shellgen.EnvVar,
			Status: StatusPass,
			Detail: c.root,
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  shellgen.EnvVar,
			Status: StatusWarn,
			Detail: "not set, run 'try init' to install the shell wrapper",
		})
	}

	info, err := os.Stat(c.root)
	switch {
	case os.IsNotExist(err):
		result.Items = append(result.Items, CheckItem{
			Label:  "root",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s does not exist yet (created on first use)", c.root),
		})
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "root",
			Status: StatusFail,
			Detail: fmt.Sprintf("inaccessible: %v", err),
		})
	case !info.IsDir():
		result.Items = append(result.Items, CheckItem{
			Label:  "root",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s exists but is not a directory", c.root),
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "root",
			Status: StatusPass,
			Detail: c.root,
		})
	}

	return result
}

// HistoryCheck verifies the workspace history file and optionally prunes
// entries whose directories no longer exist.
type HistoryCheck struct {
	store   *history.Store
	autofix bool
}

// NewHistoryCheck creates a history check.
func NewHistoryCheck(store *history.Store, autofix bool) *HistoryCheck {
	return &HistoryCheck{store: store, autofix: autofix}
}

func (c *HistoryCheck) Name() string {
	return "History"
}

func (c *HistoryCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	paths, err := c.store.Load()
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "file",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if len(paths) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "file",
			Status: StatusPass,
			Detail: "no workspaces recorded yet",
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "file",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d workspace(s) recorded at %s", len(paths), c.store.Path()),
	})

	stale := 0
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			stale++
		}
	}
	if stale == 0 {
		return result
	}

	if c.autofix {
		removed, err := c.store.Prune()
		if err != nil {
			result.Items = append(result.Items, CheckItem{
				Label:  "stale entries",
				Status: StatusFail,
				Detail: fmt.Sprintf("prune failed: %v", err),
			})
			return result
		}
		result.Items = append(result.Items, CheckItem{
			Label:  "stale entries",
			Status: StatusPass,
			Detail: fmt.Sprintf("pruned %d entries pointing to missing directories", removed),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:   "stale entries",
		Status:  StatusWarn,
		Detail:  fmt.Sprintf("%d entries point to missing directories", stale),
		Fixable: true,
	})
	return result
}

// ConfigCheck verifies the loaded configuration and surfaces its warnings.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a config check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Config"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	switch {
	case c.configPath == "":
		result.Items = append(result.Items, CheckItem{
			Label:  "file",
			Status: StatusPass,
			Detail: "using defaults",
		})
	default:
		if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
			result.Items = append(result.Items, CheckItem{
				Label:  "file",
				Status: StatusPass,
				Detail: fmt.Sprintf("%s not found, using defaults", c.configPath),
			})
		} else {
			result.Items = append(result.Items, CheckItem{
				Label:  "file",
				Status: StatusPass,
				Detail: c.configPath,
			})
		}
	}

	if err := c.cfg.Validate(); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "validation",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	warnings := c.cfg.Warnings()
	if len(warnings) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "validation",
			Status: StatusPass,
			Detail: "no issues",
		})
		return result
	}

	for _, w := range warnings {
		label := w.Category
		if w.Item != "" {
			label += "." + w.Item
		}
		result.Items = append(result.Items, CheckItem{
			Label:  label,
			Status: StatusWarn,
			Detail: w.Message,
		})
	}
	return result
}

// ShellCheck reports the detected shell and whether a dialect supports it.
type ShellCheck struct {
	shell string
}

// NewShellCheck creates a shell check for the caller-detected shell value.
func NewShellCheck(shell string) *ShellCheck {
	return &ShellCheck{shell: shell}
}

func (c *ShellCheck) Name() string {
	return "Shell"
}

func (c *ShellCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.shell == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "$SHELL",
			Status: StatusWarn,
			Detail: "not set, scripts default to the posix dialect",
		})
		return result
	}

	d, err := shellgen.ForShell(c.shell)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "$SHELL",
			Status: StatusWarn,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "$SHELL",
		Status: StatusPass,
		Detail: fmt.Sprintf("%s (%s dialect)", c.shell, d.Name()),
	})
	return result
}
