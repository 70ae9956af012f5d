package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/try/internal/core/action"
	"github.com/colonyops/try/internal/core/history"
	"github.com/colonyops/try/internal/core/workspace"
	"github.com/colonyops/try/internal/tui"
	"github.com/colonyops/try/pkg/profiler"
)

// PickCmd is the default command: browse the workspace root interactively
// and emit the command for whatever the user picks.
type PickCmd struct {
	flags *Flags
}

// NewPickCmd creates the default picker command.
func NewPickCmd(flags *Flags) *PickCmd {
	return &PickCmd{flags: flags}
}

// Flags returns picker-specific flags for registration on the root command.
func (cmd *PickCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TRY_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the picker. Exported for use as the default command action.
func (cmd *PickCmd) Run(ctx context.Context, c *cli.Command) error {
	query := strings.Join(c.Args().Slice(), " ")
	root := cmd.flags.Root()
	cfg := cmd.flags.Config

	// Start profiler server if enabled
	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	// A URL argument skips the picker entirely and emits a clone script,
	// so `try <url>` works without a terminal.
	if workspace.IsRepoURL(query) {
		dir, err := workspace.CloneDirName(query, time.Now())
		if err != nil {
			return err
		}
		return emit(c, cmd.flags, nil, action.CloneRepository{
			URL:         query,
			Destination: filepath.Join(root, dir),
			Proxy:       cfg.Clone.Proxy,
		})
	}

	entries, err := workspace.Scan(root, cfg.Scan.Ignore)
	if err != nil {
		return fmt.Errorf("scan workspace root: %w", err)
	}

	store := history.NewStore(cfg.HistoryFile)

	return runPicker(c, cmd.flags, store, tui.Options{
		Mode:    tui.ModeScan,
		Root:    root,
		Entries: entries,
		Query:   query,
		Proxy:   cfg.Clone.Proxy,
		Remover: workspace.NewDirRemover(root),
	})
}
