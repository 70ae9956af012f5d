package initcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRC(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".zshrc")

	backup, err := BackupRC(rc)
	require.NoError(t, err)
	assert.Empty(t, backup, "nothing to back up when the rc file is missing")

	require.NoError(t, os.WriteFile(rc, []byte("original\n"), 0o644))

	backup, err = BackupRC(rc)
	require.NoError(t, err)
	assert.Equal(t, rc+".bak", backup)

	content, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(content))
}

func TestBackupRC_ReplacesStaleBackup(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".zshrc")

	require.NoError(t, os.WriteFile(rc, []byte("current\n"), 0o644))
	require.NoError(t, os.WriteFile(rc+".bak", []byte("stale\n"), 0o644))

	backup, err := BackupRC(rc)
	require.NoError(t, err)

	content, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "current\n", string(content))
}

func TestAppendSourceLine(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".zshrc")
	require.NoError(t, os.WriteFile(rc, []byte("export EDITOR=vim\n"), 0o644))

	require.NoError(t, AppendSourceLine(rc, ShellZsh.SourceLine()))

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(content), "export EDITOR=vim\n", "existing content is preserved")
	assert.Contains(t, string(content), "# try shell integration\n")
	assert.Contains(t, string(content), `eval "$(try init)"`)
}

// Fish keeps its config under ~/.config/fish/, which may not exist yet.
func TestAppendSourceLine_CreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".config", "fish", "config.fish")

	require.NoError(t, AppendSourceLine(rc, ShellFish.SourceLine()))

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(content), "try init | source")
}
