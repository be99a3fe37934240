package board

import (
	"errors"
	"fmt"
	"slices"

	"quiz-match/internal/pairing"
)

var (
	// ErrBoardNotFound is returned when a file has no board with the requested name.
	ErrBoardNotFound = errors.New("board not found")
	// ErrAmbiguousBoard is returned when no name is given and the file holds several boards.
	ErrAmbiguousBoard = errors.New("board name required")
)

// File is the root of a board file.
type File struct {
	// Version of the board file schema.
	Version string `yaml:"version,omitempty"`

	// Boards lists the pairing boards defined in the file.
	Boards []Board `yaml:"boards"`
}

// Board defines one pairing exercise.
type Board struct {
	// Name identifies the board within the file.
	Name string `yaml:"name"`

	// Policy is the cardinality name, see pairing.ParseCardinality.
	Policy string `yaml:"policy"`

	// Disabled boards ignore selections until re-enabled.
	Disabled bool `yaml:"disabled,omitempty"`

	// Keys are the items on the left-hand side.
	Keys ItemList `yaml:"keys"`

	// Values are the items on the right-hand side.
	Values ItemList `yaml:"values"`

	// Seed is the initial mapping, key id to one or more value ids.
	Seed map[string]StringOrArray `yaml:"seed,omitempty"`
}

// Item is a key or value declared on a board.
type Item struct {
	ID    string
	Label string
}

// Display returns the label, falling back to the id.
func (i Item) Display() string {
	if i.Label != "" {
		return i.Label
	}

	return i.ID
}

// ItemList is a list of items; see UnmarshalYAML for accepted forms.
type ItemList []Item

// IDs returns the item ids in declaration order.
func (l ItemList) IDs() []string {
	ids := make([]string, len(l))
	for i, item := range l {
		ids[i] = item.ID
	}

	return ids
}

// Find returns the item with the given id.
func (l ItemList) Find(id string) (Item, bool) {
	i := slices.IndexFunc(l, func(item Item) bool { return item.ID == id })
	if i < 0 {
		return Item{}, false
	}

	return l[i], true
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// Board returns the board called name. An empty name selects the only board
// of a single-board file.
func (f *File) Board(name string) (*Board, error) {
	if name == "" {
		if len(f.Boards) == 1 {
			return &f.Boards[0], nil
		}

		return nil, fmt.Errorf("%w: file defines %d boards", ErrAmbiguousBoard, len(f.Boards))
	}

	for i := range f.Boards {
		if f.Boards[i].Name == name {
			return &f.Boards[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrBoardNotFound, name)
}

// Names returns the board names in declaration order.
func (f *File) Names() []string {
	names := make([]string, len(f.Boards))
	for i := range f.Boards {
		names[i] = f.Boards[i].Name
	}

	return names
}

// Cardinality parses the board policy.
func (b *Board) Cardinality() (pairing.Cardinality, error) {
	return pairing.ParseCardinality(b.Policy)
}

// SeedSets returns the seed as a set mapping.
func (b *Board) SeedSets() pairing.EntrySets {
	sets := make(pairing.EntrySets, len(b.Seed))
	for k, vs := range b.Seed {
		sets[k] = slices.Clone([]string(vs))
	}

	return sets
}

// SetSeed replaces the seed with sets, e.g. to save the outcome of a session.
func (b *Board) SetSeed(sets pairing.EntrySets) {
	if len(sets) == 0 {
		b.Seed = nil
		return
	}

	b.Seed = make(map[string]StringOrArray, len(sets))
	for k, vs := range sets {
		sorted := slices.Clone(vs)
		slices.Sort(sorted)
		b.Seed[k] = sorted
	}
}

// NewMatcher builds a machine for the board, seeded from the board seed.
// cfg.Disabled is forced on when the board is disabled.
func (b *Board) NewMatcher(cfg pairing.Config) (pairing.Matcher, error) {
	c, err := b.Cardinality()
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", b.Name, err)
	}

	cfg.Disabled = cfg.Disabled || b.Disabled

	m, err := pairing.New(c, b.SeedSets(), cfg)
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", b.Name, err)
	}

	return m, nil
}

// KeyIDs returns the declared key ids.
func (b *Board) KeyIDs() []string { return b.Keys.IDs() }

// ValueIDs returns the declared value ids.
func (b *Board) ValueIDs() []string { return b.Values.IDs() }
