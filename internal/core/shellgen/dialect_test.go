package shellgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForShell(t *testing.T) {
	tests := []struct {
		shell    string
		wantName string
		wantErr  bool
	}{
		{shell: "bash", wantName: "posix"},
		{shell: "zsh", wantName: "posix"},
		{shell: "sh", wantName: "posix"},
		{shell: "fish", wantName: "fish"},
		{shell: "/usr/local/bin/fish", wantName: "fish"},
		{shell: "/bin/zsh", wantName: "posix"},
		{shell: " bash ", wantName: "posix"},
		{shell: "powershell", wantErr: true},
		{shell: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			d, err := ForShell(tt.shell)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestPosix_Escape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "/tmp/x", want: "'/tmp/x'"},
		{name: "spaces", in: "my project", want: "'my project'"},
		{name: "single quote", in: "it's", want: `'it'\''s'`},
		{name: "dollar is inert", in: "$HOME", want: "'$HOME'"},
		{name: "empty", in: "", want: "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Posix{}.Escape(tt.in))
		})
	}
}

func TestFish_Escape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "/tmp/x", want: "'/tmp/x'"},
		{name: "single quote", in: "it's", want: `'it\'s'`},
		{name: "backslash", in: `a\b`, want: `'a\\b'`},
		{name: "backslash then quote", in: `a\'b`, want: `'a\\\'b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fish{}.Escape(tt.in))
		})
	}
}

func TestDialect_SetEnv(t *testing.T) {
	assert.Equal(t, "export TRY_PATH='/ws'", Posix{}.SetEnv(EnvVar, "/ws"))
	assert.Equal(t, "set -gx TRY_PATH '/ws'", Fish{}.SetEnv(EnvVar, "/ws"))
}

func TestDialect_Join(t *testing.T) {
	stmts := []string{"mkdir -p '/a'", "cd '/a'"}
	want := "mkdir -p '/a' && \\\n  cd '/a'"

	assert.Equal(t, want, Posix{}.Join(stmts))
	assert.Equal(t, want, Fish{}.Join(stmts))
}

func TestDialect_WorktreeAdd(t *testing.T) {
	p := Posix{}.WorktreeAdd("/ws/fix-2026-08-21")
	assert.Contains(t, p, "git rev-parse --is-inside-work-tree")
	assert.Contains(t, p, "worktree add --detach '/ws/fix-2026-08-21'")
	assert.Contains(t, p, "then")
	assert.Contains(t, p, "fi")

	f := Fish{}.WorktreeAdd("/ws/fix-2026-08-21")
	assert.Contains(t, f, "git rev-parse --is-inside-work-tree")
	assert.Contains(t, f, "worktree add --detach '/ws/fix-2026-08-21'")
	assert.Contains(t, f, "set repo (git rev-parse --show-toplevel)")
	assert.Contains(t, f, "; end")
}
