// Package common holds small generic helpers shared by the board packages.
package common

import (
	"cmp"
	"maps"
	"slices"
)

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Seen records first occurrences of values.
type Seen[E comparable] map[E]struct{}

// Add records e and reports whether it was new.
func (s Seen[E]) Add(e E) bool {
	if _, ok := s[e]; ok {
		return false
	}

	s[e] = struct{}{}

	return true
}

// Duplicates returns the values occurring more than once in s, each reported
// once, in order of their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen, reported := Seen[E]{}, Seen[E]{}

	var dups []E

	for _, e := range s {
		if !seen.Add(e) && reported.Add(e) {
			dups = append(dups, e)
		}
	}

	return dups
}
