package testing

import "github.com/sigil-03/interlock/types"

// Guard is a scriptable monitored value for consumer tests.
//
// Its update payload is the clearness reason itself: applying a nil update
// makes the guard clear, a non-nil error makes it not clear with that reason.
// The guard counts set-path and clear-path updates so tests can assert which
// path the container routed an update through.
type Guard struct {
	reason     error
	setCalls   int
	clearCalls int
}

// Compile-time assertions that Guard implements the capability contract
// including the acknowledgement extension.
var (
	_ types.Interlockable[*Guard, error] = (*Guard)(nil)
	_ types.Acknowledger[error]          = (*Guard)(nil)
)

// NewGuard creates a scriptable guard.
//
// Parameters:
//   - reason: Initial clearness; nil means clear
//
// Returns:
//   - *Guard: Initialized guard
func NewGuard(reason error) *Guard {
	return &Guard{reason: reason}
}

// IsClear returns the currently scripted reason (nil means clear).
func (g *Guard) IsClear() error {
	return g.reason
}

// Set installs a new clearness reason through the set path.
func (g *Guard) Set(reason error) {
	g.reason = reason
	g.setCalls++
}

// Clear installs a new clearness reason through the acknowledgement path.
func (g *Guard) Clear(reason error) {
	g.reason = reason
	g.clearCalls++
}

// Clone returns an independent copy of the guard. Call counters are copied
// and diverge from the original afterwards.
func (g *Guard) Clone() *Guard {
	c := *g
	return &c
}

// SetCalls returns the number of set-path updates applied.
func (g *Guard) SetCalls() int {
	return g.setCalls
}

// ClearCalls returns the number of acknowledgement-path updates applied.
func (g *Guard) ClearCalls() int {
	return g.clearCalls
}
