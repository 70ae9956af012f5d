// Package shellgen renders user actions as shell command text. The tool
// cannot change its parent shell's directory, so every outcome is expressed
// as a command string the wrapper function evaluates.
package shellgen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EnvVar is the environment variable naming the active workspace root. The
// tool never reads or writes it directly; it only emits commands that set it
// when evaluated by the shell.
const EnvVar = "TRY_PATH"

// Dialect is the syntax of one shell family. Each method returns a single
// statement with all embedded values already escaped.
type Dialect interface {
	// Name identifies the dialect, e.g. "posix" or "fish".
	Name() string
	// Escape quotes s so it is safe to embed as a single word.
	Escape(s string) string
	// ChangeDir switches the shell into path.
	ChangeDir(path string) string
	// MakeDir creates path and any missing parents, idempotently.
	MakeDir(path string) string
	// SetEnv exports an environment variable to the surrounding shell.
	SetEnv(key, value string) string
	// Echo prints an informational message.
	Echo(msg string) string
	// Touch bumps path's modification time so recency ordering tracks use.
	Touch(path string) string
	// WorktreeAdd emits a guarded detached-worktree creation: a no-op when
	// the current directory is not inside a git work tree.
	WorktreeAdd(path string) string
	// Join concatenates statements into one evaluable block, stopping at
	// the first failing statement where the dialect supports it.
	Join(stmts []string) string
}

// ForShell resolves a shell name (or a full path like /bin/zsh) to its
// dialect. Bourne-family shells share the posix dialect.
func ForShell(shell string) (Dialect, error) {
	switch filepath.Base(strings.TrimSpace(shell)) {
	case "bash", "zsh", "sh", "posix":
		return Posix{}, nil
	case "fish":
		return Fish{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q (supported: bash, zsh, sh, fish)", shell)
	}
}
