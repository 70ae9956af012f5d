package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

func TestDatedName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "widget", want: "widget-2026-08-21"},
		{name: "spaces become dashes", input: "my cool idea", want: "my-cool-idea-2026-08-21"},
		{name: "surrounding whitespace trimmed", input: "  padded ", want: "padded-2026-08-21"},
		{name: "existing dashes kept", input: "a-b", want: "a-b-2026-08-21"},
		{name: "shell metacharacters dropped", input: "fix; rm -rf ~", want: "fix-rm--rf--2026-08-21"},
		{name: "url punctuation dropped", input: "https://x.test/a", want: "httpsx.testa-2026-08-21"},
		{name: "unicode letters kept", input: "café", want: "café-2026-08-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatedName(tt.input, testNow))
		})
	}
}

func TestSanitizeName_Empty(t *testing.T) {
	assert.Empty(t, SanitizeName("///"))
	assert.Empty(t, SanitizeName("   "))
	assert.Equal(t, "a", SanitizeName(" a "))
}

func TestCloneDirName(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "https with .git", url: "https://github.com/acme/rocket.git", want: "rocket-2026-08-21"},
		{name: "https without .git", url: "https://github.com/acme/rocket", want: "rocket-2026-08-21"},
		{name: "trailing slash", url: "https://github.com/acme/rocket/", want: "rocket-2026-08-21"},
		{name: "scp style", url: "git@github.com:acme/rocket.git", want: "rocket-2026-08-21"},
		{name: "scp style without owner", url: "git@example.com:tool.git", want: "tool-2026-08-21"},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CloneDirName(tt.url, testNow)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRepoURL(t *testing.T) {
	assert.True(t, IsRepoURL("https://github.com/acme/rocket"))
	assert.True(t, IsRepoURL("http://example.com/repo"))
	assert.True(t, IsRepoURL("git@github.com:acme/rocket.git"))
	assert.False(t, IsRepoURL("rocket"))
	assert.False(t, IsRepoURL("my-experiment"))
}
