package pairing

import "slices"

// Arity is the capacity of a pending container.
type Arity int

const (
	// Scalar containers hold at most one id.
	Scalar Arity = iota
	// Multi containers hold any number of distinct ids.
	Multi
)

// Selection is an ordered set of armed ids on one side of the board.
type Selection struct {
	arity Arity
	ids   []string
}

// NewSelection returns an empty selection with the given arity.
func NewSelection(arity Arity) Selection {
	return Selection{arity: arity}
}

// Arity returns the container capacity.
func (s Selection) Arity() Arity {
	return s.arity
}

// Toggle arms id, or disarms it if it is already armed.
//
// On a scalar selection arming a different id replaces the current one.
func (s *Selection) Toggle(id string) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(slices.Clone(s.ids), i, i+1)
		return
	}

	if s.arity == Scalar {
		s.ids = []string{id}
		return
	}

	s.ids = append(slices.Clone(s.ids), id)
}

// Contains reports whether id is armed.
func (s Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Len returns the number of armed ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether nothing is armed.
func (s Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns a copy of the armed ids in selection order.
func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Clear disarms everything.
func (s *Selection) Clear() {
	s.ids = nil
}
