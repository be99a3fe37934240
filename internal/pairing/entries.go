package pairing

import (
	"maps"
	"slices"
	"sort"
)

// Entries is a committed mapping where every key holds exactly one value.
type Entries map[string]string

// EntrySets is a committed mapping where every key holds a non-empty set of values.
type EntrySets map[string][]string

// Pair is a single key/value association.
type Pair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Clone returns a copy of the mapping.
func (e Entries) Clone() Entries {
	if e == nil {
		return Entries{}
	}

	return maps.Clone(e)
}

// Owner returns the key currently holding value.
func (e Entries) Owner(value string) (string, bool) {
	for k, v := range e {
		if v == value {
			return k, true
		}
	}

	return "", false
}

// Sets converts the mapping to the set representation.
func (e Entries) Sets() EntrySets {
	out := make(EntrySets, len(e))
	for k, v := range e {
		out[k] = []string{v}
	}

	return out
}

// Clone returns a deep copy of the mapping.
func (e EntrySets) Clone() EntrySets {
	out := make(EntrySets, len(e))
	for k, vs := range e {
		out[k] = slices.Clone(vs)
	}

	return out
}

// Has reports whether key is associated with value.
func (e EntrySets) Has(key, value string) bool {
	return slices.Contains(e[key], value)
}

// Pairs flattens the mapping into pairs sorted by key, then value.
func (e EntrySets) Pairs() []Pair {
	pairs := make([]Pair, 0, len(e))
	for k, vs := range e {
		for _, v := range vs {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Key != pairs[j].Key {
			return pairs[i].Key < pairs[j].Key
		}

		return pairs[i].Value < pairs[j].Value
	})

	return pairs
}

// Single converts the set representation to Entries. It fails when a key
// holds anything other than exactly one value.
func (e EntrySets) Single() (Entries, error) {
	out := make(Entries, len(e))
	for k, vs := range e {
		if len(vs) != 1 {
			return nil, seedError("key %q holds %d values, expected exactly one", k, len(vs))
		}

		out[k] = vs[0]
	}

	return out, nil
}

// Keys returns the mapped keys in sorted order.
func (e EntrySets) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}
