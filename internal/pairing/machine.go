package pairing

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds machine construction options.
type Config struct {
	// ID names the machine in logs. A random UUID is used when empty.
	ID string
	// Logger receives debug traces of every event. Defaults to a no-op logger.
	Logger *zap.Logger
	// Disabled makes the machine ignore events until SetDisabled(false).
	Disabled bool
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{Logger: zap.NewNop()}
}

// Change is delivered to subscribers after every committed reconciliation.
type Change[M any] struct {
	// Entries is a copy of the new mapping.
	Entries M
	// Op is the kind of reconciliation that produced it.
	Op Operation
	// Keys and Values are the pending ids that were reconciled.
	Keys   []string
	Values []string
	// Evicted is the key that lost its value under 1:1, if any.
	Evicted string
	// From is the state the machine was in before the triggering event.
	From State
}

// Machine tracks the pending selection of a board and the committed mapping.
type Machine[M any] struct {
	id       string
	policy   Policy[M]
	entries  M
	keys     Selection
	values   Selection
	disabled bool
	log      *zap.Logger

	listeners    map[int]func(Change[M])
	nextListener int
}

// NewMachine builds a machine for policy, seeded with seed.
// The seed is copied; it must satisfy the policy invariants.
func NewMachine[M any](policy Policy[M], seed M, cfg Config) (*Machine[M], error) {
	if err := policy.Validate(seed); err != nil {
		return nil, fmt.Errorf("%s seed: %w", policy.Cardinality(), err)
	}

	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Machine[M]{
		id:        id,
		policy:    policy,
		entries:   policy.Clone(seed),
		keys:      NewSelection(policy.KeyArity()),
		values:    NewSelection(policy.ValueArity()),
		disabled:  cfg.Disabled,
		log:       logger.With(zap.String("machine", id), zap.String("policy", policy.Cardinality().Short())),
		listeners: map[int]func(Change[M]){},
	}, nil
}

// NewOneToOne builds a 1:1 machine.
func NewOneToOne(seed Entries, cfg Config) (*Machine[Entries], error) {
	return NewMachine(OneToOne(), seed, cfg)
}

// NewManyToOne builds an N:1 machine.
func NewManyToOne(seed Entries, cfg Config) (*Machine[Entries], error) {
	return NewMachine(ManyToOne(), seed, cfg)
}

// NewManyToMany builds an N:N machine.
func NewManyToMany(seed EntrySets, cfg Config) (*Machine[EntrySets], error) {
	return NewMachine(ManyToMany(), seed, cfg)
}

// ID returns the machine identifier.
func (m *Machine[M]) ID() string { return m.id }

// Cardinality returns the machine policy.
func (m *Machine[M]) Cardinality() Cardinality { return m.policy.Cardinality() }

// SelectKey toggles the key id.
func (m *Machine[M]) SelectKey(id string) error {
	return m.Send(KeyEvent(id))
}

// SelectValue toggles the value id.
func (m *Machine[M]) SelectValue(id string) error {
	return m.Send(ValueEvent(id))
}

// Send applies ev. When the event leaves both sides armed the pending
// selection is reconciled before Send returns. If the reconciler rejects the
// selection the error is returned and the machine is left untouched.
func (m *Machine[M]) Send(ev Event) error {
	log := m.log.With(zap.Stringer("event", ev))

	if m.disabled {
		log.Debug("event ignored, machine disabled")
		return nil
	}

	from := m.State()
	keys, values := m.keys, m.values

	switch ev.Kind {
	case EventKey:
		keys.Toggle(ev.ID)
	case EventValue:
		values.Toggle(ev.ID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}

	to := stateOf(keys, values)
	if to != StateReconciling {
		m.keys, m.values = keys, values
		log.Debug("selection changed", zap.Stringer("from", from), zap.Stringer("to", to))

		return nil
	}

	pendingKeys, pendingValues := keys.IDs(), values.IDs()

	res, err := m.policy.Reconcile(m.entries, pendingKeys, pendingValues)
	if err != nil {
		log.Error("reconciliation rejected", zap.Stringer("from", from), zap.Error(err))
		return err
	}

	m.entries = res.Entries
	m.keys.Clear()
	m.values.Clear()

	log.Debug("reconciled",
		zap.Stringer("from", from),
		zap.Stringer("op", res.Op),
		zap.Strings("keys", pendingKeys),
		zap.Strings("values", pendingValues),
		zap.String("evicted", res.Evicted),
	)

	m.notify(Change[M]{
		Op:      res.Op,
		Keys:    pendingKeys,
		Values:  pendingValues,
		Evicted: res.Evicted,
		From:    from,
	})

	return nil
}

// Subscribe registers fn to be called after every committed reconciliation.
// The returned function removes the subscription.
func (m *Machine[M]) Subscribe(fn func(Change[M])) (unsubscribe func()) {
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn

	return func() { delete(m.listeners, id) }
}

// notify delivers c to the listeners registered before the call.
func (m *Machine[M]) notify(c Change[M]) {
	n := m.nextListener
	for i := 0; i < n; i++ {
		fn, ok := m.listeners[i]
		if !ok {
			continue
		}

		c.Entries = m.policy.Clone(m.entries)
		fn(c)
	}
}

// Entries returns a copy of the committed mapping.
func (m *Machine[M]) Entries() M {
	return m.policy.Clone(m.entries)
}

// EntrySets returns the committed mapping in set form.
func (m *Machine[M]) EntrySets() EntrySets {
	return m.policy.Sets(m.entries)
}

// Pairs returns the committed associations sorted by key, then value.
func (m *Machine[M]) Pairs() []Pair {
	return m.policy.Sets(m.entries).Pairs()
}

// State returns the current protocol state. It is never StateReconciling
// between events.
func (m *Machine[M]) State() State {
	return stateOf(m.keys, m.values)
}

// PendingKeys returns the armed keys in selection order.
func (m *Machine[M]) PendingKeys() []string { return m.keys.IDs() }

// PendingValues returns the armed values in selection order.
func (m *Machine[M]) PendingValues() []string { return m.values.IDs() }

// IsKeyArmed reports whether the key id is pending.
func (m *Machine[M]) IsKeyArmed(id string) bool { return m.keys.Contains(id) }

// IsValueArmed reports whether the value id is pending.
func (m *Machine[M]) IsValueArmed(id string) bool { return m.values.Contains(id) }

// Disabled reports whether events are currently ignored.
func (m *Machine[M]) Disabled() bool { return m.disabled }

// SetDisabled turns event handling off or back on. The pending selection is kept.
func (m *Machine[M]) SetDisabled(disabled bool) {
	m.disabled = disabled
	m.log.Debug("disabled flag changed", zap.Bool("disabled", disabled))
}

// Snapshot captures the observable state of the machine.
func (m *Machine[M]) Snapshot() Snapshot {
	return Snapshot{
		ID:            m.id,
		Cardinality:   m.policy.Cardinality(),
		State:         m.State(),
		Disabled:      m.disabled,
		PendingKeys:   m.keys.IDs(),
		PendingValues: m.values.IDs(),
		Pairs:         m.Pairs(),
	}
}
