// Package interlock provides a generic safety-interlock primitive: a latch
// that asserts when a monitored value becomes unsafe and stays asserted until
// an explicit clear confirmation succeeds, even if the triggering condition
// resolves on its own.
//
// # Quick Start
//
// Wrap a monitored value in an Interlock and route every mutation through it:
//
//	import (
//	    "github.com/sigil-03/interlock"
//	    "github.com/sigil-03/interlock/guard"
//	)
//
//	il := interlock.New[*guard.Threshold, float64](guard.NewThreshold(10))
//
//	il.Set(12.5)                            // over limit, latch asserts
//	il.State()                              // StateActive
//	il.Set(4.0)                             // back under limit ...
//	il.State()                              // ... still StateActive (latching)
//	if err := il.TryClear(); err == nil {   // explicit confirmation
//	    // latch is StateInactive again
//	}
//
// # Key Features
//
//   - Latching Semantics: once asserted, only a successful TryClear releases
//     the latch; the condition resolving by itself never does
//   - Capability Contract: any type implementing Interlockable can be
//     monitored; built-in guards live in the guard subpackage
//   - Optional Acknowledgement Path: values implementing Acknowledger get a
//     distinct clear update that never affects the latch
//   - Pluggable Observability: structured logging, lifecycle hooks, and a
//     metrics collector are wired through functional options
//
// # State Machine
//
// The latch has exactly two states:
//
//	StateInactive --[Set drives value not-clear]--> StateActive
//	StateActive   --[TryClear succeeds]-----------> StateInactive
//
// TryClear consults only the monitored value's current clearness, not the
// latch: called on an inactive latch it succeeds trivially when the value is
// clear and fails when it is not.
//
// # Concurrency
//
// The container is single-threaded and fully synchronous. Every operation
// requires exclusive access; embedders running in a multi-threaded host must
// supply their own mutual exclusion around all container operations.
//
// # Advanced Usage
//
// Observability via options:
//
//	hooks := &interlock.Hooks{
//	    OnAsserted: func(reason error) { alarm.Raise(reason) },
//	}
//
//	il := interlock.New[*guard.Threshold, float64](
//	    guard.NewThreshold(10),
//	    interlock.WithLogger(myLogger),
//	    interlock.WithHooks(hooks),
//	)
//
// See the examples/ directory for complete working examples.
package interlock
