package pairing

import (
	"maps"
	"slices"
)

type oneToOne struct{}

func (oneToOne) Cardinality() Cardinality { return CardinalityOneToOne }
func (oneToOne) KeyArity() Arity          { return Scalar }
func (oneToOne) ValueArity() Arity        { return Scalar }
func (oneToOne) Clone(m Entries) Entries  { return m.Clone() }
func (oneToOne) Sets(m Entries) EntrySets { return m.Sets() }

// Validate rejects seeds where two keys share a value.
func (oneToOne) Validate(seed Entries) error {
	owners := make(map[string]string, len(seed))

	for _, k := range slices.Sorted(maps.Keys(seed)) {
		v := seed[k]
		if prev, ok := owners[v]; ok {
			return seedError("value %q is assigned to both %q and %q", v, prev, k)
		}

		owners[v] = k
	}

	return nil
}

func (p oneToOne) Reconcile(m Entries, keys, values []string) (Result[Entries], error) {
	if err := requireBothSides(p.Cardinality(), keys, values); err != nil {
		return Result[Entries]{}, err
	}

	if len(keys) != 1 || len(values) != 1 {
		return Result[Entries]{}, reconcileError(p.Cardinality(), keys, values,
			"exactly one key and one value must be selected")
	}

	key, value := keys[0], values[0]
	next := m.Clone()

	if current, ok := m[key]; ok && current == value {
		delete(next, key)
		return Result[Entries]{Entries: next, Op: OpRemove}, nil
	}

	res := Result[Entries]{Op: OpAdd}

	if owner, ok := m.Owner(value); ok {
		delete(next, owner)
		res.Evicted = owner
	}

	next[key] = value
	res.Entries = next

	return res, nil
}
