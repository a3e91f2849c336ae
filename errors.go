package interlock

import "errors"

// Sentinel errors returned by the Interlock container.
var (
	// ErrClearFailed is returned by TryClear when the monitored value's
	// clearness check reports not-clear. The domain-specific reason is
	// deliberately not propagated; only success or failure is observed.
	ErrClearFailed = errors.New("failed to clear interlock")
)
