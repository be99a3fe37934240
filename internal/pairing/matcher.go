package pairing

import "fmt"

// Snapshot is the observable state of a machine at one point in time.
type Snapshot struct {
	ID            string
	Cardinality   Cardinality
	State         State
	Disabled      bool
	PendingKeys   []string
	PendingValues []string
	Pairs         []Pair
}

// Matcher is the policy-neutral view of a machine, for hosts that render a
// board without caring about the mapping shape.
type Matcher interface {
	ID() string
	Cardinality() Cardinality

	Send(ev Event) error
	SelectKey(id string) error
	SelectValue(id string) error

	State() State
	PendingKeys() []string
	PendingValues() []string
	IsKeyArmed(id string) bool
	IsValueArmed(id string) bool

	EntrySets() EntrySets
	Pairs() []Pair
	Snapshot() Snapshot

	Disabled() bool
	SetDisabled(disabled bool)

	// Watch registers fn to receive the mapping, in set form, after every
	// committed reconciliation.
	Watch(fn func(EntrySets, Operation)) (unsubscribe func())
}

var (
	_ Matcher = (*Machine[Entries])(nil)
	_ Matcher = (*Machine[EntrySets])(nil)
)

// Watch implements Matcher.
func (m *Machine[M]) Watch(fn func(EntrySets, Operation)) (unsubscribe func()) {
	return m.Subscribe(func(c Change[M]) {
		fn(m.policy.Sets(c.Entries), c.Op)
	})
}

// New builds the machine matching c from a seed in set form. Under 1:1 and
// N:1 every seeded key must hold exactly one value.
func New(c Cardinality, seed EntrySets, cfg Config) (Matcher, error) {
	switch c {
	case CardinalityOneToOne, CardinalityManyToOne:
		entries, err := seed.Single()
		if err != nil {
			return nil, fmt.Errorf("%s seed: %w", c, err)
		}

		var m *Machine[Entries]
		if c == CardinalityOneToOne {
			m, err = NewOneToOne(entries, cfg)
		} else {
			m, err = NewManyToOne(entries, cfg)
		}

		if err != nil {
			return nil, err
		}

		return m, nil

	case CardinalityManyToMany:
		m, err := NewManyToMany(seed, cfg)
		if err != nil {
			return nil, err
		}

		return m, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCardinality, int(c))
	}
}
