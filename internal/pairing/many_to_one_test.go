package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManyToOne(t *testing.T, seed Entries) *Machine[Entries] {
	t.Helper()

	m, err := NewManyToOne(seed, DefaultConfig())
	require.NoError(t, err)

	return m
}

func TestManyToOneMakesPairs(t *testing.T) {
	tests := []struct {
		name   string
		seed   Entries
		events []Event
		want   Entries
	}{
		{
			name:   "key then value",
			events: []Event{KeyEvent("1"), ValueEvent("a")},
			want:   Entries{"1": "a"},
		},
		{
			name:   "value then key",
			events: []Event{ValueEvent("a"), KeyEvent("1")},
			want:   Entries{"1": "a"},
		},
		{
			name:   "several keys then value",
			events: []Event{KeyEvent("1"), KeyEvent("2"), ValueEvent("a")},
			want:   Entries{"1": "a", "2": "a"},
		},
		{
			name:   "some pairs already exist",
			seed:   Entries{"1": "a"},
			events: []Event{KeyEvent("1"), KeyEvent("2"), ValueEvent("a")},
			want:   Entries{"1": "a", "2": "a"},
		},
		{
			name:   "overwrite with a new value",
			events: []Event{KeyEvent("1"), ValueEvent("a"), KeyEvent("1"), ValueEvent("b")},
			want:   Entries{"1": "b"},
		},
		{
			name:   "several keys share a value",
			events: []Event{KeyEvent("1"), ValueEvent("a"), KeyEvent("2"), ValueEvent("a")},
			want:   Entries{"1": "a", "2": "a"},
		},
		{
			name:   "re-pointing a key mapped elsewhere",
			seed:   Entries{"1": "b"},
			events: []Event{KeyEvent("1"), KeyEvent("2"), ValueEvent("a")},
			want:   Entries{"1": "a", "2": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManyToOne(t, tt.seed)
			send(t, m, tt.events...)
			assert.Equal(t, tt.want, m.Entries())
		})
	}
}

func TestManyToOneRemovesPairs(t *testing.T) {
	tests := []struct {
		name   string
		seed   Entries
		events []Event
		want   Entries
	}{
		{
			name:   "key then value",
			seed:   Entries{"1": "a"},
			events: []Event{KeyEvent("1"), ValueEvent("a")},
			want:   Entries{},
		},
		{
			name:   "value then key",
			seed:   Entries{"1": "a"},
			events: []Event{ValueEvent("a"), KeyEvent("1")},
			want:   Entries{},
		},
		{
			name:   "all keys then value",
			seed:   Entries{"1": "a", "2": "a", "3": "a"},
			events: []Event{KeyEvent("2"), KeyEvent("1"), ValueEvent("a")},
			want:   Entries{"3": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManyToOne(t, tt.seed)
			send(t, m, tt.events...)
			assert.Equal(t, tt.want, m.Entries())
		})
	}
}

func TestManyToOneClearsSelectedKeys(t *testing.T) {
	m := newManyToOne(t, nil)

	send(t, m, KeyEvent("1"))
	assert.Equal(t, []string{"1"}, m.PendingKeys())
	send(t, m, KeyEvent("3"))
	assert.Equal(t, []string{"1", "3"}, m.PendingKeys())
	send(t, m, KeyEvent("3"))
	assert.Equal(t, []string{"1"}, m.PendingKeys())
	send(t, m, KeyEvent("1"))
	assert.Empty(t, m.PendingKeys())

	send(t, m, ValueEvent("a"))
	assert.Equal(t, []string{"a"}, m.PendingValues())
	assert.Empty(t, m.Entries())

	send(t, m, KeyEvent("2"))
	assert.Equal(t, Entries{"2": "a"}, m.Entries())
	assert.Empty(t, m.PendingKeys())
	assert.Empty(t, m.PendingValues())
}

func TestManyToOneClearsSelectedValue(t *testing.T) {
	m := newManyToOne(t, nil)

	send(t, m, ValueEvent("a"))
	assert.Equal(t, []string{"a"}, m.PendingValues())
	send(t, m, ValueEvent("a"))
	assert.Empty(t, m.PendingValues())

	send(t, m, ValueEvent("a"), ValueEvent("b"))
	assert.Equal(t, []string{"b"}, m.PendingValues())

	send(t, m, KeyEvent("1"))
	assert.Equal(t, Entries{"1": "b"}, m.Entries())
}

func TestManyToOneReconcileRejectsInvalidSelection(t *testing.T) {
	_, err := ManyToOne().Reconcile(Entries{}, []string{"1"}, nil)
	require.ErrorIs(t, err, ErrInvalidReconciliation)

	_, err = ManyToOne().Reconcile(Entries{}, []string{"1"}, []string{"a", "b"})
	require.ErrorIs(t, err, ErrInvalidReconciliation)
}
