package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/try/internal/core/action"
	"github.com/colonyops/try/internal/core/validate"
	"github.com/colonyops/try/internal/core/workspace"
)

// CloneCmd emits a script that clones a repository into a dated directory
// under the workspace root.
type CloneCmd struct {
	flags *Flags
	proxy string
}

// NewCloneCmd creates a new clone command.
func NewCloneCmd(flags *Flags) *CloneCmd {
	return &CloneCmd{flags: flags}
}

// Register adds the clone command to the application.
func (cmd *CloneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clone",
		Usage:     "Clone a git repository into a dated workspace directory",
		UsageText: "try clone <url> [name]",
		Description: `Emits the clone script for the wrapper to evaluate. The destination is
<root>/<name>-<date>, where name defaults to the repository's basename.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "proxy",
				Usage:       "command prefix for the git clone invocation",
				Sources:     cli.EnvVars("TRY_CLONE_PROXY"),
				Destination: &cmd.proxy,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *CloneCmd) run(ctx context.Context, c *cli.Command) error {
	url := c.Args().First()
	if url == "" {
		return fmt.Errorf("clone requires a repository URL")
	}

	now := time.Now()
	root := cmd.flags.Root()

	var dir string
	if name := c.Args().Get(1); name != "" {
		if err := validate.WorkspaceNameField("name", name); err != nil {
			return err
		}
		dir = workspace.DatedName(name, now)
	} else {
		var err error
		dir, err = workspace.CloneDirName(url, now)
		if err != nil {
			return err
		}
	}

	dest := filepath.Join(root, dir)
	if workspace.DirExists(dest) {
		renamed, err := resolveCloneConflict(dest, now)
		if err != nil {
			return err
		}
		dest = renamed
	}

	proxy := cmd.proxy
	if proxy == "" {
		proxy = cmd.flags.Config.Clone.Proxy
	}

	return emit(c, cmd.flags, nil, action.CloneRepository{
		URL:         url,
		Destination: dest,
		Proxy:       proxy,
	})
}

// resolveCloneConflict asks for a new directory name when the computed
// destination already exists. Without a terminal there is nothing to ask, so
// the conflict is an error rather than a silent reuse.
func resolveCloneConflict(dest string, now time.Time) (string, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return "", fmt.Errorf("destination %s already exists", dest)
	}

	var name string
	err := huh.NewInput().
		Title("Destination already exists").
		Description(dest + "\nPick a different name:").
		Validate(validate.WorkspaceName).
		Value(&name).
		Run()
	if err != nil {
		return "", err
	}

	renamed := filepath.Join(filepath.Dir(dest), workspace.DatedName(name, now))
	if workspace.DirExists(renamed) {
		return "", fmt.Errorf("destination %s already exists", renamed)
	}
	return renamed, nil
}
