package pairing

// Operation tells what a reconciliation did to the mapping.
type Operation int

const (
	// OpAdd means missing associations were created.
	OpAdd Operation = iota
	// OpRemove means every pending association already existed and was removed.
	OpRemove
)

func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Result is the outcome of a reconciliation.
type Result[M any] struct {
	// Entries is the new mapping. The input mapping is never modified.
	Entries M
	// Op is decided once from the mapping before the transition.
	Op Operation
	// Evicted is the key that lost its value to make room for the new pair (1:1 only).
	Evicted string
}

// Policy is the capability set that distinguishes the three board variants.
// M is the mapping shape: Entries for 1:1 and N:1, EntrySets for N:N.
type Policy[M any] interface {
	// Cardinality identifies the policy.
	Cardinality() Cardinality
	// KeyArity is the capacity of the pending keys container.
	KeyArity() Arity
	// ValueArity is the capacity of the pending values container.
	ValueArity() Arity
	// Validate checks a seed mapping against the policy invariants.
	Validate(seed M) error
	// Clone copies a mapping.
	Clone(m M) M
	// Sets converts a mapping to the policy-neutral set representation.
	Sets(m M) EntrySets
	// Reconcile commits the pending keys and values into m.
	Reconcile(m M, keys, values []string) (Result[M], error)
}

// OneToOne returns the 1:1 policy.
func OneToOne() Policy[Entries] { return oneToOne{} }

// ManyToOne returns the N:1 policy.
func ManyToOne() Policy[Entries] { return manyToOne{} }

// ManyToMany returns the N:N policy.
func ManyToMany() Policy[EntrySets] { return manyToMany{} }

func requireBothSides(c Cardinality, keys, values []string) error {
	if len(keys) == 0 || len(values) == 0 {
		return reconcileError(c, keys, values, "a key and a value must be selected")
	}

	return nil
}
