package guard

import "github.com/sigil-03/interlock/types"

// Flag is the simplest monitored value: a single boolean condition where true
// means tripped (not clear) and false means clear.
//
// Flag deliberately does not implement the acknowledgement path; clear updates
// issued through an Interlock's Clear operation are routed to Set.
type Flag struct {
	tripped bool
}

// Compile-time assertion that Flag implements Interlockable.
var _ types.Interlockable[*Flag, bool] = (*Flag)(nil)

// NewFlag creates a new flag guard.
//
// Parameters:
//   - tripped: Initial condition; true means not clear
//
// Returns:
//   - *Flag: Initialized flag guard
//
// Example:
//
//	il := interlock.New[*guard.Flag, bool](guard.NewFlag(false))
func NewFlag(tripped bool) *Flag {
	return &Flag{tripped: tripped}
}

// IsClear returns nil while the flag is not tripped and ErrTripped otherwise.
func (f *Flag) IsClear() error {
	if f.tripped {
		return ErrTripped
	}

	return nil
}

// Set installs a new tripped judgment.
func (f *Flag) Set(tripped bool) {
	f.tripped = tripped
}

// Clone returns an independent copy of the flag.
func (f *Flag) Clone() *Flag {
	c := *f
	return &c
}

// Tripped reports the current condition.
func (f *Flag) Tripped() bool {
	return f.tripped
}
