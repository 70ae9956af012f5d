package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/try/internal/core/shellgen"
	"github.com/colonyops/try/internal/core/validate"
	"github.com/colonyops/try/internal/core/workspace"
)

// WorktreeCmd emits a script that adds a detached git worktree of the
// current repository under a dated directory in the workspace root.
type WorktreeCmd struct {
	flags *Flags
}

// NewWorktreeCmd creates a new worktree command.
func NewWorktreeCmd(flags *Flags) *WorktreeCmd {
	return &WorktreeCmd{flags: flags}
}

// Register adds the worktree command to the application.
func (cmd *WorktreeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "worktree",
		Usage:     "Create a dated worktree of the current repository",
		UsageText: "try worktree <name>",
		Description: `Emits a script that creates <root>/<name>-<date> and registers it as a
detached worktree when run inside a git repository, then switches into it.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *WorktreeCmd) run(ctx context.Context, c *cli.Command) error {
	name := c.Args().First()
	if err := validate.WorkspaceNameField("worktree name", name); err != nil {
		return err
	}

	path := filepath.Join(cmd.flags.Root(), workspace.DatedName(name, time.Now()))

	dialect, err := cmd.flags.Dialect()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, shellgen.WorktreeScript(path, dialect))
	return err
}
