// Command docgen generates CLI reference documentation from the try command
// definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/try/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "try",
		Usage:     "Fuzzy-pick, create, and clone dated workspace directories",
		UsageText: "try [global options] [command] [query | git-url]",
		Description: `Try keeps throwaway projects in dated directories under one workspace
root. It prints shell commands on stdout for a wrapper function to
evaluate, which is how directory changes stick in your parent shell.

Run 'try init --install' once to add the wrapper to your shell. After
that, 'try' opens the picker, 'try <query>' opens it pre-filtered, and
'try <git-url>' clones into a dated directory.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("TRY_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file (defaults to the state dir, e.g. ~/.local/state/try/try.log)",
				Sources: cli.EnvVars("TRY_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("TRY_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "path to data directory",
				Sources: cli.EnvVars("TRY_DATA_DIR"),
				Value:   commands.DefaultDataDir(),
			},
			&cli.StringFlag{
				Name:    "path",
				Usage:   "workspace root directory",
				Sources: cli.EnvVars("TRY_PATH"),
			},
			&cli.StringFlag{
				Name:    "shell",
				Usage:   "shell dialect for emitted commands (bash, zsh, sh, fish)",
				Sources: cli.EnvVars("TRY_SHELL", "SHELL"),
			},
		},
	}

	pickCmd := commands.NewPickCmd(flags)
	root.Flags = append(root.Flags, pickCmd.Flags()...)

	root = commands.NewPathCmd(flags).Register(root)
	root = commands.NewCloneCmd(flags).Register(root)
	root = commands.NewWorktreeCmd(flags).Register(root)
	root = commands.NewLsCmd(flags).Register(root)
	root = commands.NewDoctorCmd(flags).Register(root)
	root = commands.NewInitCmd(flags).Register(root)
	root = commands.NewGuideCmd(flags).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
