package guard

import (
	"fmt"

	"github.com/sigil-03/interlock/types"
)

// Band monitors a numeric reading that must stay inside a [low, high] window.
// The value is clear while low <= reading <= high; it is unsafe both below and
// above the window.
//
// Band implements the acknowledgement path: Clear installs a corrected
// reading without the interlock container re-evaluating the latch.
type Band struct {
	reading float64
	low     float64
	high    float64
}

// Compile-time assertions that Band implements the capability contract
// including the acknowledgement extension.
var (
	_ types.Interlockable[*Band, float64] = (*Band)(nil)
	_ types.Acknowledger[float64]         = (*Band)(nil)
)

// NewBand creates a new band guard. The initial reading is low, which is
// inside the window.
//
// Parameters:
//   - low: Lower bound of the allowed window (inclusive)
//   - high: Upper bound of the allowed window (inclusive)
//
// Returns:
//   - *Band: Initialized band guard
//
// Example:
//
//	il := interlock.New[*guard.Band, float64](guard.NewBand(3.0, 3.6))
func NewBand(low, high float64) *Band {
	return &Band{reading: low, low: low, high: high}
}

// IsClear returns nil while the reading is inside the window, and an error
// wrapping ErrOutOfBand with the offending values otherwise.
func (b *Band) IsClear() error {
	if b.reading < b.low || b.reading > b.high {
		return fmt.Errorf("%w: reading %v, band [%v, %v]", ErrOutOfBand, b.reading, b.low, b.high)
	}

	return nil
}

// Set installs a new reading.
func (b *Band) Set(reading float64) {
	b.reading = reading
}

// Clear installs a corrected reading through the acknowledgement path.
func (b *Band) Clear(reading float64) {
	b.reading = reading
}

// Clone returns an independent copy of the guard.
func (b *Band) Clone() *Band {
	c := *b
	return &c
}

// Reading returns the current reading.
func (b *Band) Reading() float64 {
	return b.reading
}
