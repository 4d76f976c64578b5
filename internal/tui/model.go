// Package tui implements the interactive picker: a query field over a
// fuzzy-filtered list of try folders. The bubbletea Update function is
// the selection state machine; View renders the current state. The
// program draws on stderr so stdout stays reserved for the command the
// shell integration evals.
package tui

import (
	"fmt"
	"strings"
	"time"

	"trygo/internal/filter"
	"trygo/internal/log"
	"trygo/internal/resolve"
	"trygo/internal/scan"
	"trygo/internal/watch"
	"trygo/pkg/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
)

// tickInterval bounds the input wait so external changes (directory
// rescans) fold into the loop without starving the CPU.
const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Options configures a picker session.
type Options struct {
	// BaseDir is the tries directory.
	BaseDir string
	// Ignore hides matching folder names from the snapshot.
	Ignore []glob.Glob
	// Theme names the color theme.
	Theme string
	// InitialQuery pre-fills the query field.
	InitialQuery string
	// Watch reloads the snapshot when the directory changes.
	Watch bool
}

// Model is the selection state machine plus what the renderer needs.
type Model struct {
	query    textinput.Model
	all      []types.Entry
	filtered []types.Entry
	cursor   int

	finished  bool
	aborted   bool
	candidate string

	baseDir string
	ignore  []glob.Glob
	watcher *watch.Watcher

	styles Styles
	width  int
	height int
	freeMB uint64
	hasMB  bool
}

// NewModel loads the initial snapshot and builds the picker model.
func NewModel(opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "search or name a new try"
	ti.Focus()
	if opts.InitialQuery != "" {
		ti.SetValue(opts.InitialQuery)
	}

	m := &Model{
		query:   ti,
		all:     scan.List(opts.BaseDir, opts.Ignore),
		baseDir: opts.BaseDir,
		ignore:  opts.Ignore,
		styles:  NewStyles(opts.Theme),
		width:   80,
		height:  24,
	}
	m.freeMB, m.hasMB = scan.FreeDiskSpaceMB(opts.BaseDir)
	m.refilter()

	if opts.Watch {
		w, err := watch.New(opts.BaseDir)
		if err != nil {
			// A static list still works; just note it
			log.LogWithFields(log.F("error", err)).Debug("directory watcher unavailable")
		} else if err := w.Start(); err == nil {
			m.watcher = w
		}
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model. Every transition completes before the
// next render; there is exactly one mutator of this state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.watcher != nil {
			select {
			case <-m.watcher.Changed():
				m.reload()
			default:
			}
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.aborted = true
		m.finish()
		return m, tea.Quit

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		switch {
		case len(m.filtered) > 0:
			m.candidate = m.filtered[m.cursor].Name
		case m.query.Value() != "":
			m.candidate = m.query.Value()
		default:
			m.aborted = true
		}
		m.finish()
		return m, tea.Quit
	}

	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// refilter re-derives the filtered view from the full snapshot and
// resets the cursor to the top.
func (m *Model) refilter() {
	m.filtered = filter.Rank(m.all, m.query.Value())
	m.cursor = 0
}

// reload picks up external directory changes mid-session.
func (m *Model) reload() {
	m.all = scan.List(m.baseDir, m.ignore)
	m.refilter()
	m.freeMB, m.hasMB = scan.FreeDiskSpaceMB(m.baseDir)
}

func (m *Model) finish() {
	m.finished = true
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}

// Candidate returns the final typed or selected name. Empty plus
// Aborted() means the session ended without a selection.
func (m *Model) Candidate() string {
	return m.candidate
}

// Aborted reports whether the user cancelled the session.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Finished reports whether the state machine reached its terminal state.
func (m *Model) Finished() bool {
	return m.finished
}

// Cursor returns the current cursor position in the filtered list.
func (m *Model) Cursor() int {
	return m.cursor
}

// Filtered returns the current filtered view.
func (m *Model) Filtered() []types.Entry {
	return m.filtered
}

// Query returns the live query string.
func (m *Model) Query() string {
	return m.query.Value()
}

// SetSize sets the render area, mainly for tests.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View implements tea.Model
func (m *Model) View() string {
	if m.finished {
		return ""
	}

	var sb strings.Builder

	innerWidth := m.width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}

	sb.WriteString(m.styles.Title.Render("trygo") +
		m.styles.Muted.Render("  pick a try or start a new one"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.SearchBox.Width(innerWidth).Render(m.query.View()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.ListBox.Width(innerWidth).Render(m.renderList(innerWidth - 2)))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("↑/↓ navigate · enter select/create · esc cancel"))

	return sb.String()
}

func (m *Model) renderList(width int) string {
	// Space taken by title, boxes, status and help lines
	maxVisible := m.height - 9
	if maxVisible < 3 {
		maxVisible = 3
	}

	if len(m.filtered) == 0 {
		if m.query.Value() == "" {
			return m.styles.Muted.Render("no tries yet - type a name to create one")
		}
		return m.styles.Muted.Render(fmt.Sprintf("no match - enter creates %q", m.query.Value()))
	}

	// Keep the cursor visible inside the window
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderEntry(m.filtered[i], i == m.cursor, width))
	}
	if end < len(m.filtered) {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("… %d more", len(m.filtered)-end)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderEntry(e types.Entry, selected bool, width int) string {
	marker := "  "
	nameStyle := m.styles.Normal
	if selected {
		marker = m.styles.Cursor.Render("» ")
		nameStyle = m.styles.Selected
	}

	name := m.renderName(e, nameStyle)
	meta := m.styles.Date.Render(relativeTime(e.Modified))

	pad := width - 2 - lipgloss.Width(name) - lipgloss.Width(meta)
	if pad < 1 {
		pad = 1
	}
	return marker + name + strings.Repeat(" ", pad) + meta
}

// renderName dims a date prefix and highlights the matched runes.
func (m *Model) renderName(e types.Entry, base lipgloss.Style) string {
	matched := make(map[int]bool, len(e.Matched))
	for _, idx := range e.Matched {
		matched[idx] = true
	}

	dimUntil := 0
	if _, _, ok := resolve.SplitDatePrefix(e.Name); ok {
		dimUntil = len(resolve.DatePrefixFormat) + 1
	}

	var sb strings.Builder
	for i, r := range e.Name {
		s := string(r)
		switch {
		case matched[i]:
			sb.WriteString(m.styles.Highlight.Render(s))
		case i < dimUntil:
			sb.WriteString(m.styles.Date.Render(s))
		default:
			sb.WriteString(base.Render(s))
		}
	}
	return sb.String()
}

func (m *Model) renderStatus() string {
	parts := []string{fmt.Sprintf("%d/%d tries", len(m.filtered), len(m.all))}
	if m.hasMB {
		parts = append(parts, fmt.Sprintf("%d MB free", m.freeMB))
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
