package executil

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	e := &RealExecutor{}

	out, err := e.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(string(out)))
}

func TestRealExecutor_RunError(t *testing.T) {
	e := &RealExecutor{}

	_, err := e.Run(context.Background(), "false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec false")
}

func TestRecordingExecutor(t *testing.T) {
	e := &RecordingExecutor{
		Outputs: map[string][]byte{"git": []byte("git version 2.45.1")},
		Errors:  map[string]error{"hg": context.DeadlineExceeded},
	}

	out, err := e.Run(context.Background(), "git", "--version")
	require.NoError(t, err)
	assert.Equal(t, "git version 2.45.1", string(out))

	_, err = e.Run(context.Background(), "hg", "version")
	require.Error(t, err)

	require.Len(t, e.Commands, 2)
	assert.Equal(t, RecordedCommand{Cmd: "git", Args: []string{"--version"}}, e.Commands[0])
	assert.Equal(t, RecordedCommand{Cmd: "hg", Args: []string{"version"}}, e.Commands[1])
}
