package commands

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/try/internal/core/action"
	"github.com/colonyops/try/internal/core/history"
	"github.com/colonyops/try/internal/core/shellgen"
	"github.com/colonyops/try/internal/core/styles"
	"github.com/colonyops/try/internal/tui"
)

// runPicker drives one interactive session and emits the resulting command
// text. The picker renders to stderr so stdout stays reserved for the
// command block the shell wrapper evaluates. Cancellation exits non-zero
// with nothing on stdout.
func runPicker(c *cli.Command, flags *Flags, store *history.Store, opts tui.Options) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return fmt.Errorf("interactive picker requires a terminal (stderr is not a tty)")
	}

	p := tea.NewProgram(tui.NewPicker(opts), tea.WithOutput(os.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	model := finalModel.(tui.Picker)
	if model.Cancelled() {
		return cli.Exit("", 1)
	}

	act, ok := model.Action()
	if !ok {
		return cli.Exit("", 1)
	}

	return emit(c, flags, store, act)
}

// emit translates act for the active dialect and prints it to stdout. A
// SetWorkspaceRoot action is recorded in the history store first; a store
// failure is surfaced on stderr but never suppresses the command the user
// already committed to.
func emit(c *cli.Command, flags *Flags, store *history.Store, act action.UserAction) error {
	if set, ok := act.(action.SetWorkspaceRoot); ok && store != nil {
		if err := store.Record(set.Path); err != nil {
			log.Warn().Err(err).Str("path", set.Path).Msg("record workspace history")
			fmt.Fprintln(os.Stderr, styles.TextMutedStyle.Render("# try: failed to record workspace history: "+err.Error()))
		}
	}

	dialect, err := flags.Dialect()
	if err != nil {
		return err
	}

	script, err := shellgen.Translate(act, dialect)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, script)
	return err
}
