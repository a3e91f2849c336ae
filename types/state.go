package types

// State represents the interlock latch state.
//
// The latch cycles between two states for the lifetime of the container:
//
//	StateInactive --[set drives value not-clear]--> StateActive
//	StateActive   --[successful TryClear]--------> StateInactive
//
// There is no terminal state.
type State int

const (
	// StateInactive indicates the latch is clear and no action is required.
	StateInactive State = iota

	// StateActive indicates the latch is asserted and requires an explicit,
	// successful clear confirmation before it reverts to StateInactive.
	StateActive
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}
