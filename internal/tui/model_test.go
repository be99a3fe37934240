package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-match/internal/board"
	"quiz-match/internal/pairing"
)

func keyRunes(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

func newTestModel(t *testing.T, policy string, opts Options) Model {
	t.Helper()

	b := &board.Board{
		Name:   "capitals",
		Policy: policy,
		Keys:   board.ItemList{{ID: "france"}, {ID: "spain", Label: "Spain"}},
		Values: board.ItemList{{ID: "paris"}, {ID: "madrid"}},
	}

	m, err := b.NewMatcher(pairing.DefaultConfig())
	require.NoError(t, err)

	return New(b, m, opts)
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)

		got, ok := next.(Model)
		require.True(t, ok, "Update returned %T, want Model", next)

		m = got
	}

	return m
}

func TestModelPairs(t *testing.T) {
	m := newTestModel(t, "1:1", Options{})

	m = apply(t, m, keyEnter)
	assert.Equal(t, pairing.StateKeyArmed, m.Matcher().State())
	assert.Contains(t, m.View(), "[france]")
	assert.Contains(t, m.View(), "state: KeyArmed")

	m = apply(t, m, keyTab, keyEnter)
	assert.Equal(t, pairing.EntrySets{"france": {"paris"}}, m.Matcher().EntrySets())
	assert.Equal(t, pairing.StateIdle, m.Matcher().State())

	view := m.View()
	assert.Contains(t, view, "france -> paris")
	assert.Contains(t, view, "last: add, 1 pair(s)")
	assert.NotContains(t, view, "[france]")

	// Selecting the same pair again removes it.
	m = apply(t, m, keyEnter, keyTab, keyEnter)
	assert.Empty(t, m.Matcher().EntrySets())
	assert.Contains(t, m.View(), "last: remove, 0 pair(s)")
}

func TestModelCursor(t *testing.T) {
	m := newTestModel(t, "n:1", Options{})

	// Up from the first key wraps to the last one.
	m = apply(t, m, keyUp, keySpace)
	assert.Equal(t, []string{"spain"}, m.Matcher().PendingKeys())

	m = apply(t, m, keyRunes("j"), keyEnter)
	assert.Equal(t, []string{"spain", "france"}, m.Matcher().PendingKeys())

	m = apply(t, m, keyRunes("l"), keyRunes("j"), keyEnter)
	assert.Equal(t, pairing.EntrySets{"france": {"madrid"}, "spain": {"madrid"}}, m.Matcher().EntrySets())
}

func TestModelDisable(t *testing.T) {
	m := newTestModel(t, "1:1", Options{})

	m = apply(t, m, keyRunes("d"), keyEnter)
	assert.True(t, m.Matcher().Disabled())
	assert.Equal(t, pairing.StateIdle, m.Matcher().State())
	assert.Contains(t, m.View(), "[disabled]")

	m = apply(t, m, keyRunes("d"), keyEnter)
	assert.False(t, m.Matcher().Disabled())
	assert.Equal(t, pairing.StateKeyArmed, m.Matcher().State())
}

func TestModelLabels(t *testing.T) {
	assert.Contains(t, newTestModel(t, "1:1", Options{ShowLabels: true}).View(), "Spain")
	assert.NotContains(t, newTestModel(t, "1:1", Options{}).View(), "Spain")
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t, "1:1", Options{})

			next, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())

			got := next.(Model)
			assert.True(t, got.Quitting())
			assert.Empty(t, got.View())
		})
	}
}

func TestModelEmptyColumn(t *testing.T) {
	b := &board.Board{Name: "empty", Policy: "n:n", Keys: board.ItemList{{ID: "k"}}}

	matcher, err := b.NewMatcher(pairing.DefaultConfig())
	require.NoError(t, err)

	m := apply(t, New(b, matcher, Options{}), keyTab, keyRunes("j"), keyEnter, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, pairing.StateIdle, m.Matcher().State())
	assert.Nil(t, m.Init())
}

func TestModelPairedIDsPerColumn(t *testing.T) {
	b := &board.Board{
		Name:   "numbers",
		Policy: "1:1",
		Keys:   board.ItemList{{ID: "1"}, {ID: "2"}},
		Values: board.ItemList{{ID: "1"}, {ID: "2"}},
	}

	matcher, err := b.NewMatcher(pairing.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, matcher.SelectKey("1"))
	require.NoError(t, matcher.SelectValue("2"))

	m := New(b, matcher, Options{})

	tests := []struct {
		name string
		col  column
		want map[string]bool
	}{
		{name: "keys", col: columnKeys, want: map[string]bool{"1": true}},
		{name: "values", col: columnValues, want: map[string]bool{"2": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.pairedIDs(tt.col))
		})
	}
}
