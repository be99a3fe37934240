package pairing

import (
	"maps"
	"slices"
)

type manyToMany struct{}

func (manyToMany) Cardinality() Cardinality    { return CardinalityManyToMany }
func (manyToMany) KeyArity() Arity             { return Multi }
func (manyToMany) ValueArity() Arity           { return Multi }
func (manyToMany) Clone(m EntrySets) EntrySets { return m.Clone() }
func (manyToMany) Sets(m EntrySets) EntrySets  { return m.Clone() }

// Validate rejects empty and duplicated value sets.
func (manyToMany) Validate(seed EntrySets) error {
	for _, k := range slices.Sorted(maps.Keys(seed)) {
		vs := seed[k]
		if len(vs) == 0 {
			return seedError("key %q has an empty value set", k)
		}

		seen := make(map[string]struct{}, len(vs))
		for _, v := range vs {
			if _, dup := seen[v]; dup {
				return seedError("key %q lists value %q twice", k, v)
			}

			seen[v] = struct{}{}
		}
	}

	return nil
}

// Reconcile requires one side to be a singleton. The selection protocol fires
// on the first event that makes the second side non-empty, so a pending
// selection with several keys and several values cannot be produced by it.
func (p manyToMany) Reconcile(m EntrySets, keys, values []string) (Result[EntrySets], error) {
	if err := requireBothSides(p.Cardinality(), keys, values); err != nil {
		return Result[EntrySets]{}, err
	}

	if len(keys) != 1 && len(values) != 1 {
		return Result[EntrySets]{}, reconcileError(p.Cardinality(), keys, values,
			"either only one key or only one value must be selected")
	}

	allPaired := true

	for _, k := range keys {
		for _, v := range values {
			if !m.Has(k, v) {
				allPaired = false
			}
		}
	}

	next := m.Clone()

	if allPaired {
		for _, k := range keys {
			remaining := slices.DeleteFunc(next[k], func(v string) bool {
				return slices.Contains(values, v)
			})
			if len(remaining) == 0 {
				delete(next, k)
			} else {
				next[k] = remaining
			}
		}

		return Result[EntrySets]{Entries: next, Op: OpRemove}, nil
	}

	for _, k := range keys {
		for _, v := range values {
			if !slices.Contains(next[k], v) {
				next[k] = append(next[k], v)
			}
		}
	}

	return Result[EntrySets]{Entries: next, Op: OpAdd}, nil
}
