package shellgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/try/internal/core/action"
)

func dialects() []Dialect {
	return []Dialect{Posix{}, Fish{}}
}

// Every action kind must render to a block that names its target path and
// its verb, and must not pick up verbs from other kinds.
func TestTranslate_ActionShapes(t *testing.T) {
	tests := []struct {
		name            string
		act             action.UserAction
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:            "change directory",
			act:             action.ChangeDirectory{Path: "/tmp/x"},
			wantContains:    []string{"cd '/tmp/x'", "touch '/tmp/x'"},
			wantNotContains: []string{"mkdir"},
		},
		{
			name:         "create and enter",
			act:          action.CreateAndEnter{Path: "/ws/idea-2026-08-21"},
			wantContains: []string{"mkdir -p '/ws/idea-2026-08-21'", "cd '/ws/idea-2026-08-21'"},
		},
		{
			name:            "clone",
			act:             action.CloneRepository{URL: "https://github.com/acme/rocket", Destination: "/ws/rocket-2026-08-21"},
			wantContains:    []string{"mkdir -p '/ws/rocket-2026-08-21'", "git clone 'https://github.com/acme/rocket' '/ws/rocket-2026-08-21'", "Cloning https://github.com/acme/rocket...", "cd '/ws/rocket-2026-08-21'"},
			wantNotContains: []string{"touch"},
		},
	}

	for _, tt := range tests {
		for _, d := range dialects() {
			t.Run(tt.name+"/"+d.Name(), func(t *testing.T) {
				got, err := Translate(tt.act, d)
				require.NoError(t, err)

				for _, want := range tt.wantContains {
					assert.Contains(t, got, want)
				}
				for _, not := range tt.wantNotContains {
					assert.NotContains(t, got, not)
				}
			})
		}
	}
}

func TestTranslate_SetWorkspaceRoot(t *testing.T) {
	act := action.SetWorkspaceRoot{Path: "/ws"}

	posix, err := Translate(act, Posix{})
	require.NoError(t, err)
	assert.Contains(t, posix, "export TRY_PATH='/ws'")
	assert.Contains(t, posix, "cd '/ws'")

	fish, err := Translate(act, Fish{})
	require.NoError(t, err)
	assert.Contains(t, fish, "set -gx TRY_PATH '/ws'")
	assert.Contains(t, fish, "cd '/ws'")
}

func TestTranslate_CloneProxy(t *testing.T) {
	act := action.CloneRepository{
		URL:         "https://github.com/acme/rocket",
		Destination: "/ws/rocket-2026-08-21",
		Proxy:       "git-proxy",
	}

	got, err := Translate(act, Posix{})
	require.NoError(t, err)
	assert.Contains(t, got, "git-proxy git clone 'https://github.com/acme/rocket'")
}

func TestTranslate_StatementsStopOnFailure(t *testing.T) {
	got, err := Translate(action.CreateAndEnter{Path: "/ws/a"}, Posix{})
	require.NoError(t, err)

	// Three statements joined so a failing mkdir never reaches cd.
	assert.Equal(t, 3, len(strings.Split(got, " && \\\n  ")))
}

func TestTranslate_UnknownAction(t *testing.T) {
	_, err := Translate(nil, Posix{})
	require.Error(t, err)
}

func TestTranslate_EscapesHostilePaths(t *testing.T) {
	act := action.ChangeDirectory{Path: "/ws/it's; rm -rf ~"}

	got, err := Translate(act, Posix{})
	require.NoError(t, err)
	assert.Contains(t, got, `cd '/ws/it'\''s; rm -rf ~'`)
}

func TestWorktreeScript(t *testing.T) {
	got := WorktreeScript("/ws/fix-2026-08-21", Posix{})

	assert.Contains(t, got, "mkdir -p '/ws/fix-2026-08-21'")
	assert.Contains(t, got, "worktree add --detach")
	assert.Contains(t, got, "cd '/ws/fix-2026-08-21'")

	// The worktree guard runs after mkdir and before cd.
	mkdirIdx := strings.Index(got, "mkdir")
	guardIdx := strings.Index(got, "rev-parse")
	cdIdx := strings.LastIndex(got, "cd ")
	assert.Less(t, mkdirIdx, guardIdx)
	assert.Less(t, guardIdx, cdIdx)
}
