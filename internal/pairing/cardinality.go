package pairing

import (
	"fmt"
	"strings"
)

// Cardinality selects the pairing policy of a board.
type Cardinality int

const (
	CardinalityOneToOne   Cardinality = iota // 1:1 - one key to one value, values are exclusive
	CardinalityManyToOne                     // N:1 - many keys to one value
	CardinalityManyToMany                    // N:N - many keys to many values
)

// String returns the canonical policy name used in board files.
func (c Cardinality) String() string {
	switch c {
	case CardinalityOneToOne:
		return "one-to-one"
	case CardinalityManyToOne:
		return "many-to-one"
	case CardinalityManyToMany:
		return "many-to-many"
	default:
		return "unknown"
	}
}

// Short returns the ratio notation of the cardinality, e.g. "N:1".
func (c Cardinality) Short() string {
	switch c {
	case CardinalityOneToOne:
		return "1:1"
	case CardinalityManyToOne:
		return "N:1"
	case CardinalityManyToMany:
		return "N:N"
	default:
		return "?:?"
	}
}

// Names lists the canonical names of all cardinalities.
func Names() []string {
	return []string{
		CardinalityOneToOne.String(),
		CardinalityManyToOne.String(),
		CardinalityManyToMany.String(),
	}
}

// ParseCardinality accepts the canonical names as well as the ratio notation.
func ParseCardinality(s string) (Cardinality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-to-one", "1:1":
		return CardinalityOneToOne, nil
	case "many-to-one", "n:1":
		return CardinalityManyToOne, nil
	case "many-to-many", "n:n", "n:m":
		return CardinalityManyToMany, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCardinality, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Cardinality) MarshalText() ([]byte, error) {
	switch c {
	case CardinalityOneToOne, CardinalityManyToOne, CardinalityManyToMany:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCardinality, int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cardinality) UnmarshalText(text []byte) error {
	parsed, err := ParseCardinality(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
