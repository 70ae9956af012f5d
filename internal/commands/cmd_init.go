package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	initcmd "github.com/colonyops/try/internal/commands/init"
	"github.com/colonyops/try/internal/core/config"
	"github.com/colonyops/try/internal/core/history"
	"github.com/colonyops/try/internal/core/shellgen"
	"github.com/colonyops/try/internal/core/styles"
)

// InitCmd prints the shell wrapper, or installs it into the rc file.
type InitCmd struct {
	flags   *Flags
	install bool
	yes     bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Print the shell wrapper function",
		UsageText: "try init [path] [options]",
		Description: `Prints the wrapper function that evaluates emitted commands, plus the
initial $TRY_PATH export. Add to your shell config:

  eval "$(try init)"         # bash, zsh
  try init | source          # fish

The optional path argument sets the initial workspace root.
Use --install to append that line to your rc file instead of printing.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "install",
				Usage:       "append the integration line to your shell rc file",
				Destination: &cmd.install,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.install {
		return cmd.runInstall()
	}

	root := cmd.flags.Root()
	if arg := c.Args().First(); arg != "" {
		root = config.ExpandPath(arg)
	}

	// Seed the history so the root shows up in `try path` immediately. The
	// wrapper itself must still print on failure, so this only warns.
	store := history.NewStore(cmd.flags.Config.HistoryFile)
	if err := store.Record(root); err != nil {
		log.Warn().Err(err).Str("path", root).Msg("record workspace history")
	}

	dialect, err := cmd.flags.Dialect()
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		exe = "try"
	}

	script, err := shellgen.InitScript(dialect, exe, root)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, script)
	return err
}

func (cmd *InitCmd) runInstall() error {
	w := os.Stderr

	shell, err := initcmd.DetectShell()
	if err != nil {
		return fmt.Errorf("detect shell: %w", err)
	}

	installed, err := initcmd.SourceLineExists(shell.RCFile)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", shell.RCFile, err)
	}
	if installed {
		fmt.Fprintln(w, styles.TextSuccessStyle.Render("Shell integration already installed: ")+
			styles.TextMutedStyle.Render(shell.RCFile))
		return nil
	}

	line := shell.Name.SourceLine()

	if !cmd.yes {
		var confirm bool
		err := huh.NewConfirm().
			Title("Install shell integration?").
			Description(fmt.Sprintf("Appends %q to %s (a backup will be created)", line, shell.RCFile)).
			Value(&confirm).
			Run()
		if err != nil {
			return err
		}
		if !confirm {
			fmt.Fprintln(w, styles.TextMutedStyle.Render("Install cancelled"))
			return nil
		}
	}

	backupPath, err := initcmd.BackupRC(shell.RCFile)
	if err != nil {
		return fmt.Errorf("backup rc file: %w", err)
	}
	if backupPath != "" {
		fmt.Fprintln(w, styles.TextSuccessStyle.Render("Backed up rc file to: ")+
			styles.TextMutedStyle.Render(backupPath))
	}

	if err := initcmd.AppendSourceLine(shell.RCFile, line); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.TextSuccessStyle.Render("Added integration to: ")+
		styles.TextMutedStyle.Render(shell.RCFile))
	fmt.Fprintln(w, styles.TextMutedStyle.Render(
		fmt.Sprintf("Run 'source %s' or restart your shell to pick it up", shell.RCFile)))
	return nil
}
