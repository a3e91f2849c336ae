package guard

import (
	"fmt"

	"github.com/sigil-03/interlock/types"
)

// Threshold monitors a numeric reading against a fixed upper limit. The value
// is clear while the reading does not exceed the limit.
//
// Threshold implements the acknowledgement path: Clear installs a corrected
// reading without the interlock container re-evaluating the latch.
type Threshold struct {
	reading float64
	limit   float64
}

// Compile-time assertions that Threshold implements the capability contract
// including the acknowledgement extension.
var (
	_ types.Interlockable[*Threshold, float64] = (*Threshold)(nil)
	_ types.Acknowledger[float64]              = (*Threshold)(nil)
)

// NewThreshold creates a new threshold guard with a zero initial reading.
//
// Parameters:
//   - limit: Upper limit; readings above it make the value not clear
//
// Returns:
//   - *Threshold: Initialized threshold guard
//
// Example:
//
//	il := interlock.New[*guard.Threshold, float64](guard.NewThreshold(10))
func NewThreshold(limit float64) *Threshold {
	return &Threshold{limit: limit}
}

// IsClear returns nil while the reading does not exceed the limit, and an
// error wrapping ErrLimitExceeded with the offending values otherwise.
func (t *Threshold) IsClear() error {
	if t.reading > t.limit {
		return fmt.Errorf("%w: reading %v, limit %v", ErrLimitExceeded, t.reading, t.limit)
	}

	return nil
}

// Set installs a new reading.
func (t *Threshold) Set(reading float64) {
	t.reading = reading
}

// Clear installs a corrected reading through the acknowledgement path.
func (t *Threshold) Clear(reading float64) {
	t.reading = reading
}

// Clone returns an independent copy of the guard.
func (t *Threshold) Clone() *Threshold {
	c := *t
	return &c
}

// Reading returns the current reading.
func (t *Threshold) Reading() float64 {
	return t.reading
}

// Limit returns the configured upper limit.
func (t *Threshold) Limit() float64 {
	return t.limit
}
