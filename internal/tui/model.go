// Package tui is an interactive terminal board for a pairing machine.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"quiz-match/internal/board"
	"quiz-match/internal/pairing"
)

type column int

const (
	columnKeys column = iota
	columnValues
)

// Options configure the board view.
type Options struct {
	Theme Theme
	// ShowLabels renders item labels instead of ids.
	ShowLabels bool
	Logger     *zap.Logger
}

// changeFeed collects notifications from the machine. It is shared by all
// copies of the model.
type changeFeed struct {
	count int
	op    pairing.Operation
	pairs int
}

// Model is the Bubble Tea model of one board.
type Model struct {
	board   *board.Board
	matcher pairing.Matcher
	feed    *changeFeed
	styles  styles
	opts    Options
	log     *zap.Logger

	col     column
	cursor  [2]int
	seen    int
	last    string
	err     error
	width   int
	stopped bool
}

// New builds a model for b driven by m.
func New(b *board.Board, m pairing.Matcher, opts Options) Model {
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	feed := &changeFeed{}
	m.Watch(func(sets pairing.EntrySets, op pairing.Operation) {
		feed.count++
		feed.op = op
		feed.pairs = len(sets.Pairs())
	})

	return Model{
		board:   b,
		matcher: m,
		feed:    feed,
		styles:  newStyles(opts.Theme),
		opts:    opts,
		log:     logger.Named("tui"),
	}
}

// Matcher returns the machine behind the board.
func (m Model) Matcher() pairing.Matcher { return m.matcher }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.stopped }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopped = true
		return m, tea.Quit
	case "tab", "left", "right", "h", "l":
		m.col = 1 - m.col
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter", " ", "space":
		m.selectCurrent()
	case "d":
		m.matcher.SetDisabled(!m.matcher.Disabled())
	}

	return m, nil
}

func (m *Model) items(c column) board.ItemList {
	if c == columnKeys {
		return m.board.Keys
	}

	return m.board.Values
}

func (m *Model) moveCursor(delta int) {
	n := len(m.items(m.col))
	if n == 0 {
		return
	}

	m.cursor[m.col] = (m.cursor[m.col] + delta + n) % n
}

func (m *Model) selectCurrent() {
	items := m.items(m.col)
	if len(items) == 0 {
		return
	}

	id := items[m.cursor[m.col]].ID

	ev := pairing.KeyEvent(id)
	if m.col == columnValues {
		ev = pairing.ValueEvent(id)
	}

	m.err = m.matcher.Send(ev)
	if m.err != nil {
		m.log.Warn("selection rejected", zap.Stringer("event", ev), zap.Error(m.err))
		return
	}

	if m.feed.count != m.seen {
		m.seen = m.feed.count
		m.last = fmt.Sprintf("%s, %d pair(s)", m.feed.op, m.feed.pairs)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.stopped {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("%s (%s)", m.board.Name, m.matcher.Cardinality())
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(columnKeys, "keys"),
		m.renderColumn(columnValues, "values"),
	))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// pairedIDs reports which items of column c take part in a pair.
// Keys and values are separate id spaces.
func (m Model) pairedIDs(c column) map[string]bool {
	ids := map[string]bool{}
	for _, p := range m.matcher.EntrySets().Pairs() {
		if c == columnKeys {
			ids[p.Key] = true
		} else {
			ids[p.Value] = true
		}
	}

	return ids
}

func (m Model) renderColumn(c column, title string) string {
	sets := m.matcher.EntrySets()
	paired := m.pairedIDs(c)

	lines := []string{m.styles.header.Render(title)}

	for i, item := range m.items(c) {
		marker := "  "
		if c == m.col && i == m.cursor[c] {
			marker = m.styles.cursor.Render("> ")
		}

		text := item.ID
		if m.opts.ShowLabels {
			text = item.Display()
		}

		armed := m.matcher.IsKeyArmed(item.ID)
		if c == columnValues {
			armed = m.matcher.IsValueArmed(item.ID)
		}

		switch {
		case armed:
			text = m.styles.armed.Render("[" + text + "]")
		case paired[item.ID]:
			text = m.styles.paired.Render(text)
		}

		if c == columnKeys && len(sets[item.ID]) > 0 {
			text += m.styles.muted.Render(" -> " + strings.Join(sets[item.ID], ", "))
		}

		lines = append(lines, marker+text)
	}

	style := m.styles.column
	if c == m.col {
		style = m.styles.active
	}

	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	status := "state: " + m.matcher.State().String()
	if m.matcher.Disabled() {
		status += "  [disabled]"
	}

	lines := []string{status}

	if m.last != "" {
		lines = append(lines, "last: "+m.last)
	}

	if m.err != nil {
		lines = append(lines, m.styles.errorMsg.Render("error: "+m.err.Error()))
	}

	lines = append(lines, m.styles.muted.Render("tab switch  j/k move  enter select  d disable  q quit"))

	return strings.Join(lines, "\n")
}
