package shellgen

import (
	"fmt"
	"strings"
)

// Posix targets bash, zsh, and plain sh.
type Posix struct{}

func (Posix) Name() string { return "posix" }

// Escape single-quotes s. An embedded single quote closes the literal,
// emits an escaped quote, and reopens it.
func (Posix) Escape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func (p Posix) ChangeDir(path string) string {
	return "cd " + p.Escape(path)
}

func (p Posix) MakeDir(path string) string {
	return "mkdir -p " + p.Escape(path)
}

func (p Posix) SetEnv(key, value string) string {
	return "export " + key + "=" + p.Escape(value)
}

func (p Posix) Echo(msg string) string {
	return "echo " + p.Escape(msg)
}

func (p Posix) Touch(path string) string {
	return "touch " + p.Escape(path)
}

func (p Posix) WorktreeAdd(path string) string {
	return fmt.Sprintf(
		`if git rev-parse --is-inside-work-tree >/dev/null 2>&1; then repo=$(git rev-parse --show-toplevel); git -C "$repo" worktree add --detach %s; fi`,
		p.Escape(path),
	)
}

func (Posix) Join(stmts []string) string {
	return strings.Join(stmts, " && \\\n  ")
}
