package interlock

import "github.com/sigil-03/interlock/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `interlock` package,
// while still providing a convenient `interlock.State`, `interlock.Logger`,
// etc. for users.
type (
	State            = types.State
	Logger           = types.Logger
	Hooks            = types.Hooks
	MetricsCollector = types.MetricsCollector
)

// Re-export the capability contract interfaces for convenience.
type (
	Interlockable[T any, U any] = types.Interlockable[T, U]
	Acknowledger[U any]         = types.Acknowledger[U]
)

// Re-export State constants from the types subpackage.
const (
	StateInactive = types.StateInactive
	StateActive   = types.StateActive
)
