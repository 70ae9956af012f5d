package shellgen

import (
	"fmt"
	"strings"
)

// Fish targets the fish shell. Fish single quotes honor backslash escapes,
// so both backslash and quote need escaping inside the literal.
type Fish struct{}

func (Fish) Name() string { return "fish" }

func (Fish) Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

func (f Fish) ChangeDir(path string) string {
	return "cd " + f.Escape(path)
}

func (f Fish) MakeDir(path string) string {
	return "mkdir -p " + f.Escape(path)
}

func (f Fish) SetEnv(key, value string) string {
	return "set -gx " + key + " " + f.Escape(value)
}

func (f Fish) Echo(msg string) string {
	return "echo " + f.Escape(msg)
}

func (f Fish) Touch(path string) string {
	return "touch " + f.Escape(path)
}

func (f Fish) WorktreeAdd(path string) string {
	return fmt.Sprintf(
		`if git rev-parse --is-inside-work-tree >/dev/null 2>&1; set repo (git rev-parse --show-toplevel); git -C "$repo" worktree add --detach %s; end`,
		f.Escape(path),
	)
}

// Join uses && with line continuations; fish has supported both since 3.0.
func (Fish) Join(stmts []string) string {
	return strings.Join(stmts, " && \\\n  ")
}
