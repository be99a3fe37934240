package pairing

//go:generate go tool stringer -type=State -trimprefix=State -output=state_string.go

// State is the position of a machine in the selection protocol.
type State int

const (
	StateIdle        State = iota // nothing armed
	StateKeyArmed                 // keys armed, no value armed
	StateValueArmed               // values armed, no key armed
	StateReconciling              // both sides armed; consumed within the same event
)

func stateOf(keys, values Selection) State {
	switch {
	case !keys.IsEmpty() && !values.IsEmpty():
		return StateReconciling
	case !keys.IsEmpty():
		return StateKeyArmed
	case !values.IsEmpty():
		return StateValueArmed
	default:
		return StateIdle
	}
}
