package pairing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidReconciliation reports a reconciliation attempted with a pending
	// selection the policy cannot accept. It indicates a bug in the caller, not
	// a user error.
	ErrInvalidReconciliation = errors.New("invalid reconciliation state")

	// ErrInvalidSeed reports a seed mapping that breaks the policy invariants.
	ErrInvalidSeed = errors.New("invalid seed mapping")

	// ErrUnknownEvent reports an event whose kind is neither key nor value.
	ErrUnknownEvent = errors.New("unknown event kind")

	// ErrUnknownCardinality reports an unrecognized policy name.
	ErrUnknownCardinality = errors.New("unknown cardinality")
)

// ReconcileError describes a rejected reconciliation.
type ReconcileError struct {
	Cardinality Cardinality
	Keys        []string
	Values      []string
	Reason      string
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("%s: %s (keys=[%s] values=[%s]): %s",
		ErrInvalidReconciliation, e.Cardinality.Short(),
		strings.Join(e.Keys, ","), strings.Join(e.Values, ","), e.Reason)
}

func (e *ReconcileError) Unwrap() error {
	return ErrInvalidReconciliation
}

func reconcileError(c Cardinality, keys, values []string, reason string) *ReconcileError {
	return &ReconcileError{
		Cardinality: c,
		Keys:        append([]string(nil), keys...),
		Values:      append([]string(nil), values...),
		Reason:      reason,
	}
}

func seedError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSeed, fmt.Sprintf(format, args...))
}
