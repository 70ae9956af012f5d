// Package tui implements the interactive workspace picker. The picker is a
// full-screen Bubble Tea model that renders to stderr; the selected action is
// read back by the caller after the program exits and translated to shell
// text on stdout.
package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/colonyops/try/internal/core/action"
	"github.com/colonyops/try/internal/core/score"
	"github.com/colonyops/try/internal/core/styles"
	"github.com/colonyops/try/internal/core/workspace"
)

// Mode selects which list the picker browses and what committing a real
// entry means.
type Mode int

const (
	// ModeScan browses directories under the workspace root; committing
	// one changes into it.
	ModeScan Mode = iota
	// ModeHistory browses previously used workspace roots; committing one
	// adopts it as the active root.
	ModeHistory
)

type sessionState int

const (
	stateBrowsing sessionState = iota
	stateDeleteConfirm
)

// Options configures a picker session.
type Options struct {
	Mode    Mode
	Root    string            // base for created and cloned directories
	Entries []workspace.Entry // pre-loaded candidates
	Query   string            // initial filter text
	Proxy   string            // command prefix for clone invocations
	Remover workspace.Remover // nil disables marking for deletion
	Now     func() time.Time  // nil means time.Now
}

// Picker is the Bubble Tea model for one selection session.
type Picker struct {
	mode    Mode
	root    string
	proxy   string
	entries []workspace.Entry
	remover workspace.Remover
	now     func() time.Time

	input        textinput.Model
	ranked       []score.Ranked
	cursor       int
	scrollOffset int
	marked       map[string]bool
	state        sessionState
	status       string
	lastQuery    string

	width  int
	height int

	committed action.UserAction
	cancelled bool
	quitting  bool
}

// NewPicker builds a picker with the initial query already ranked.
func NewPicker(opts Options) Picker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Prompt = "> "
	if opts.Mode == ModeScan {
		input.Placeholder = "type to filter, paste a URL to clone"
	} else {
		input.Placeholder = "type to filter"
	}
	input.SetValue(opts.Query)
	input.Focus()
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Focused.Prompt = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	inputStyles.Cursor.Color = styles.ColorPrimary
	input.SetWidth(48)
	input.SetStyles(inputStyles)

	return Picker{
		mode:      opts.Mode,
		root:      opts.Root,
		proxy:     opts.Proxy,
		entries:   opts.Entries,
		remover:   opts.Remover,
		now:       now,
		input:     input,
		ranked:    score.Rank(opts.Entries, opts.Query, now()),
		marked:    make(map[string]bool),
		lastQuery: opts.Query,
	}
}

func (m Picker) Init() tea.Cmd {
	return nil
}

func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScroll()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit
		}
		if m.state == stateDeleteConfirm {
			return m.updateDeleteConfirm(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Picker) updateBrowsing(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "esc":
		// Marks are in-memory only; cancelling discards them.
		m.cancelled = true
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.commit()

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.ranked)-1 {
			m.cursor++
			m.adjustScroll()
		}
		return m, nil

	case "ctrl+d", "delete":
		m.toggleMark()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if q := m.input.Value(); q != m.lastQuery {
		m.lastQuery = q
		m.ranked = score.Rank(m.entries, q, m.now())
		m.cursor = 0
		m.scrollOffset = 0
	}

	return m, cmd
}

// toggleMark flips the highlighted entry's membership in the deletion set.
// The synthetic create row has no path and cannot be marked.
func (m *Picker) toggleMark() {
	if m.remover == nil {
		m.status = "deletion is not available here"
		return
	}
	if m.cursor >= len(m.ranked) {
		return
	}
	row := m.ranked[m.cursor]
	if row.CreateNew {
		return
	}
	if m.marked[row.Entry.Path] {
		delete(m.marked, row.Entry.Path)
	} else {
		m.marked[row.Entry.Path] = true
	}
}

// commit resolves the session into a UserAction, or into the delete
// confirmation prompt when entries are marked.
func (m Picker) commit() (tea.Model, tea.Cmd) {
	if len(m.marked) > 0 {
		m.state = stateDeleteConfirm
		return m, nil
	}

	query := strings.TrimSpace(m.input.Value())

	// A URL query clones instead of filtering. Recognized only at commit,
	// and only when browsing the workspace root.
	if m.mode == ModeScan && workspace.IsRepoURL(query) {
		dir, err := workspace.CloneDirName(query, m.now())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.committed = action.CloneRepository{
			URL:         query,
			Destination: filepath.Join(m.root, dir),
			Proxy:       m.proxy,
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.cursor >= len(m.ranked) {
		return m, nil
	}
	row := m.ranked[m.cursor]

	if row.CreateNew {
		if workspace.SanitizeName(row.Entry.Name) == "" {
			m.status = fmt.Sprintf("nothing to create from %q", row.Entry.Name)
			return m, nil
		}
		path := filepath.Join(m.root, workspace.DatedName(row.Entry.Name, m.now()))
		if workspace.DirExists(path) {
			// Today's dated name already exists; enter it rather than
			// recreate it.
			m.committed = action.ChangeDirectory{Path: path}
		} else {
			m.committed = action.CreateAndEnter{Path: path}
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == ModeHistory {
		m.committed = action.SetWorkspaceRoot{Path: row.Entry.Path}
	} else {
		m.committed = action.ChangeDirectory{Path: row.Entry.Path}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Picker) updateDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.removeMarked()
	default:
		// Anything else backs out with the marks cleared and nothing
		// removed.
		m.status = ""
	}
	m.marked = make(map[string]bool)
	m.state = stateBrowsing
	return m, nil
}

// removeMarked deletes every marked directory and drops the removed ones
// from the in-memory list. Failures leave their entries in place; deletion
// never ends the session.
func (m *Picker) removeMarked() {
	paths := make([]string, 0, len(m.marked))
	for p := range m.marked {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	removed := make(map[string]bool, len(paths))
	var failed []string
	for _, p := range paths {
		if err := m.remover.Remove(p); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", filepath.Base(p), err))
			continue
		}
		removed[p] = true
	}

	if len(removed) > 0 {
		kept := m.entries[:0]
		for _, e := range m.entries {
			if !removed[e.Path] {
				kept = append(kept, e)
			}
		}
		m.entries = kept
		m.ranked = score.Rank(m.entries, m.lastQuery, m.now())
		if m.cursor >= len(m.ranked) {
			m.cursor = len(m.ranked) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.adjustScroll()
	}

	if len(failed) > 0 {
		m.status = "failed to remove " + strings.Join(failed, ", ")
	} else {
		m.status = fmt.Sprintf("removed %d workspace(s)", len(removed))
	}
}

// visibleRows reports how many list rows fit between the header and the
// footer at the current terminal height.
func (m Picker) visibleRows() int {
	if m.height <= 0 {
		return 10
	}
	rows := m.height - 5
	if rows < 3 {
		return 3
	}
	return rows
}

func (m *Picker) adjustScroll() {
	maxVisible := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+maxVisible {
		m.scrollOffset = m.cursor - maxVisible + 1
	}
}

func (m Picker) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Picker) render() string {
	title := styles.TitleStyle.Render("try")
	if m.mode == ModeHistory {
		title += "  " + styles.TextMutedStyle.Render("recent workspaces")
	} else {
		title += "  " + styles.TextMutedStyle.Render(m.root)
	}

	divWidth := m.width
	if divWidth <= 0 || divWidth > 60 {
		divWidth = 60
	}
	divider := styles.DividerStyle.Render(strings.Repeat("─", divWidth))

	maxVisible := m.visibleRows()
	end := m.scrollOffset + maxVisible
	if end > len(m.ranked) {
		end = len(m.ranked)
	}

	rows := make([]string, 0, maxVisible+1)
	for i := m.scrollOffset; i < end; i++ {
		rows = append(rows, m.renderRow(m.ranked[i], i == m.cursor))
	}
	if remaining := len(m.ranked) - end; remaining > 0 {
		rows = append(rows, styles.TextMutedStyle.Italic(true).Render(
			fmt.Sprintf("  ... and %d more", remaining)))
	}
	if len(m.ranked) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("  no workspaces yet"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.input.View(),
		divider,
		strings.Join(rows, "\n"),
		m.footer(),
	)
}

func (m Picker) footer() string {
	if m.state == stateDeleteConfirm {
		return styles.DeleteBannerStyle.Render(fmt.Sprintf(
			"delete %d marked workspace(s)? y confirms, any other key keeps them", len(m.marked)))
	}
	if m.status != "" {
		return styles.TextWarningStyle.Render(m.status)
	}
	help := "↑/↓ move • enter select • esc cancel"
	if m.remover != nil {
		help = "↑/↓ move • enter select • ctrl+d mark for deletion • esc cancel"
	}
	return styles.TextMutedStyle.Render(help)
}

func (m Picker) renderRow(r score.Ranked, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	if r.CreateNew {
		label := "create " + workspace.DatedName(r.Entry.Name, m.now())
		style := styles.RowCreateStyle
		if selected {
			style = style.Bold(true)
		}
		return prefix + style.Render(label)
	}

	var name string
	switch {
	case m.marked[r.Entry.Path]:
		name = styles.RowMarkedStyle.Render(r.Entry.Name)
	default:
		name = highlightMatches(r.Entry.Name, r.Positions, selected)
	}

	age := styles.TextMutedStyle.Render(timeAgo(m.now().Sub(r.Entry.ModifiedAt)))
	return prefix + name + "  " + age
}

// highlightMatches renders name with the matched rune positions emphasized.
func highlightMatches(name string, positions []int, selected bool) string {
	base := styles.RowStyle
	match := styles.MatchStyle
	if selected {
		base = styles.RowSelectedStyle
		match = styles.MatchSelectedStyle
	}
	if len(positions) == 0 {
		return base.Render(name)
	}

	posSet := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		posSet[p] = struct{}{}
	}

	var b strings.Builder
	for i, r := range []rune(name) {
		if _, ok := posSet[i]; ok {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// timeAgo formats an age for the row gutter.
func timeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Action returns the committed action. ok is false when the session was
// cancelled or never committed.
func (m Picker) Action() (action.UserAction, bool) {
	return m.committed, m.committed != nil
}

// Cancelled reports whether the user aborted the session.
func (m Picker) Cancelled() bool {
	return m.cancelled
}
