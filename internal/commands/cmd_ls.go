package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/try/internal/core/score"
	"github.com/colonyops/try/internal/core/workspace"
	"github.com/colonyops/try/pkg/iojson"
)

// LsCmd lists workspace directories in ranked order.
type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	query      string
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List workspace directories",
		UsageText: "try ls [--query <q>] [--json]",
		Description: `Prints workspaces under the root, most recently touched first.

The table goes to stderr so the shell wrapper has nothing to evaluate.
Use --json for one JSON object per line on stdout, and --query to rank
with the same fuzzy matcher the picker uses.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "fuzzy filter, same ranking as the picker",
				Destination: &cmd.query,
			},
		},
		Action: cmd.run,
	})
	return app
}

// workspaceInfo is the JSON output format for try ls --json.
type workspaceInfo struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	ModifiedAt time.Time `json:"modified_at"`
	Score      float64   `json:"score"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	root := cmd.flags.Root()

	entries, err := workspace.Scan(root, cmd.flags.Config.Scan.Ignore)
	if err != nil {
		return fmt.Errorf("scan workspace root: %w", err)
	}

	ranked := make([]score.Ranked, 0, len(entries))
	for _, r := range score.Rank(entries, cmd.query, time.Now()) {
		if !r.CreateNew {
			ranked = append(ranked, r)
		}
	}

	if cmd.jsonOutput {
		out := c.Root().Writer
		for _, r := range ranked {
			info := workspaceInfo{
				Name:       r.Entry.Name,
				Path:       r.Entry.Path,
				ModifiedAt: r.Entry.ModifiedAt,
				Score:      r.Score,
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode workspace: %w", err)
			}
		}
		return nil
	}

	if len(ranked) == 0 {
		fmt.Fprintf(os.Stderr, "No workspaces under %s\n", root)
		return nil
	}

	w := tabwriter.NewWriter(os.Stderr, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tMODIFIED\tPATH")
	for _, r := range ranked {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			r.Entry.Name, r.Entry.ModifiedAt.Format("2006-01-02 15:04"), r.Entry.Path)
	}
	return w.Flush()
}
