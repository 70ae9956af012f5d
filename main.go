package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/try/internal/commands"
	"github.com/colonyops/try/internal/core/config"
	"github.com/colonyops/try/internal/core/styles"
	"github.com/colonyops/try/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "try",
		Usage:     "Fuzzy-pick, create, and clone dated workspace directories",
		UsageText: "try [global options] [command] [query | git-url]",
		Description: `Try keeps throwaway projects in dated directories under one workspace
root. It prints shell commands on stdout for a wrapper function to
evaluate, which is how directory changes stick in your parent shell.

Run 'try init --install' once to add the wrapper to your shell. After
that, 'try' opens the picker, 'try <query>' opens it pre-filtered, and
'try <git-url>' clones into a dated directory.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TRY_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to the state dir, e.g. ~/.local/state/try/try.log)",
				Sources:     cli.EnvVars("TRY_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TRY_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TRY_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "path",
				Usage:       "workspace root directory",
				Sources:     cli.EnvVars("TRY_PATH"),
				Destination: &flags.Path,
			},
			&cli.StringFlag{
				Name:        "shell",
				Usage:       "shell dialect for emitted commands (bash, zsh, sh, fish)",
				Sources:     cli.EnvVars("TRY_SHELL", "SHELL"),
				Destination: &flags.Shell,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; stdout carries emitted commands and
			// stderr carries the picker, so neither can take log lines.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = commands.DefaultLogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewPathCmd(flags).Register(app)
	app = commands.NewCloneCmd(flags).Register(app)
	app = commands.NewWorktreeCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)
	app = commands.NewGuideCmd(flags).Register(app)

	// Register picker flags on the root command and make the picker the
	// default action. Arguments that don't name a subcommand become the
	// initial query, so `try fix parser` filters immediately.
	pickCmd := commands.NewPickCmd(flags)
	app.Flags = append(app.Flags, pickCmd.Flags()...)
	app.Action = pickCmd.Run

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		// Errors go to stderr: anything on stdout would be evaluated by
		// the shell wrapper.
		if msg := runErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		exitCode = 1
	}
	os.Exit(exitCode)
}
