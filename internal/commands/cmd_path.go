package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/try/internal/core/action"
	"github.com/colonyops/try/internal/core/config"
	"github.com/colonyops/try/internal/core/history"
	"github.com/colonyops/try/internal/core/workspace"
	"github.com/colonyops/try/internal/tui"
)

// PathCmd switches the active workspace root, either to an explicit
// directory or interactively from the history list.
type PathCmd struct {
	flags *Flags
}

// NewPathCmd creates a new path command.
func NewPathCmd(flags *Flags) *PathCmd {
	return &PathCmd{flags: flags}
}

// Register adds the path command to the application.
func (cmd *PathCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "path",
		Aliases:   []string{"set"},
		Usage:     "Switch the active workspace root",
		UsageText: "try path [directory]",
		Description: `Sets $TRY_PATH for the current shell and switches into the new root.

With a directory argument the switch is immediate. Without one, previously
used roots are offered in a picker, with the current directory pinned first.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *PathCmd) run(ctx context.Context, c *cli.Command) error {
	store := history.NewStore(cmd.flags.Config.HistoryFile)

	if dir := c.Args().First(); dir != "" {
		path, err := filepath.Abs(config.ExpandPath(dir))
		if err != nil {
			return fmt.Errorf("resolve %q: %w", dir, err)
		}
		if !workspace.DirExists(path) {
			return fmt.Errorf("%s is not a directory", path)
		}
		return emit(c, cmd.flags, store, action.SetWorkspaceRoot{Path: path})
	}

	paths, err := store.Load()
	if err != nil {
		// A broken history file degrades to an empty list; the picker
		// still shows the current directory.
		log.Warn().Err(err).Msg("load workspace history")
		paths = nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	entries := workspace.HistoryEntries(history.PinFirst(paths, cwd), time.Now())

	return runPicker(c, cmd.flags, store, tui.Options{
		Mode:    tui.ModeHistory,
		Root:    cmd.flags.Root(),
		Entries: entries,
	})
}
