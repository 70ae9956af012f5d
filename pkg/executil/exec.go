// Package executil wraps external command execution so doctor checks can
// probe tool versions without owning exec plumbing.
package executil

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor runs an external command and returns its combined output.
type Executor interface {
	Run(ctx context.Context, cmd string, args ...string) ([]byte, error)
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, cmd, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return out, nil
}
