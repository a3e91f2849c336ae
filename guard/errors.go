package guard

import "errors"

// Sentinel errors reported by the built-in guards' clearness checks.
var (
	// ErrTripped is returned by Flag.IsClear while the flag is tripped.
	ErrTripped = errors.New("flag is tripped")

	// ErrLimitExceeded is returned by Threshold.IsClear while the reading
	// exceeds the limit.
	ErrLimitExceeded = errors.New("reading exceeds limit")

	// ErrOutOfBand is returned by Band.IsClear while the reading is outside
	// the allowed window.
	ErrOutOfBand = errors.New("reading outside allowed band")
)
