package pairing

type manyToOne struct{}

func (manyToOne) Cardinality() Cardinality { return CardinalityManyToOne }
func (manyToOne) KeyArity() Arity          { return Multi }
func (manyToOne) ValueArity() Arity        { return Scalar }
func (manyToOne) Validate(Entries) error   { return nil }
func (manyToOne) Clone(m Entries) Entries  { return m.Clone() }
func (manyToOne) Sets(m Entries) EntrySets { return m.Sets() }

func (p manyToOne) Reconcile(m Entries, keys, values []string) (Result[Entries], error) {
	if err := requireBothSides(p.Cardinality(), keys, values); err != nil {
		return Result[Entries]{}, err
	}

	if len(values) != 1 {
		return Result[Entries]{}, reconcileError(p.Cardinality(), keys, values,
			"exactly one value must be selected")
	}

	value := values[0]

	allPaired := true

	for _, k := range keys {
		if current, ok := m[k]; !ok || current != value {
			allPaired = false
			break
		}
	}

	next := m.Clone()

	if allPaired {
		for _, k := range keys {
			delete(next, k)
		}

		return Result[Entries]{Entries: next, Op: OpRemove}, nil
	}

	for _, k := range keys {
		next[k] = value
	}

	return Result[Entries]{Entries: next, Op: OpAdd}, nil
}
