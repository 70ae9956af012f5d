package commands

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/colonyops/try/internal/core/styles"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

//go:embed guide.md
var guideMD string

type GuideCmd struct {
	flags *Flags
}

func NewGuideCmd(flags *Flags) *GuideCmd {
	return &GuideCmd{flags: flags}
}

func (gc *GuideCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "guide",
		Usage:  "Show the usage guide",
		Action: gc.run,
	})

	return app
}

func (gc *GuideCmd) run(ctx context.Context, c *cli.Command) error {
	// The guide is informational, so it renders to stderr like the
	// picker does. stdout stays reserved for the shell wrapper.
	fmt.Fprintln(os.Stderr, renderGuide())
	return nil
}

func renderGuide() string {
	width := 80
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 && w < width {
		width = w
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw guide")
		return guideMD
	}

	rendered, err := renderer.Render(guideMD)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw guide")
		return guideMD
	}

	return rendered
}
