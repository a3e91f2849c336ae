// Package guard provides built-in monitored value implementations.
//
// Guards are ready-made types satisfying the interlock capability contract.
// The package includes three built-in guards:
//
//   - Flag: single boolean tripped/clear condition (simplest possible guard)
//   - Threshold: numeric reading checked against an upper limit
//   - Band: numeric reading that must stay inside a [low, high] window
//
// # Guard Selection Guide
//
// Flag:
//   - Use when the monitored condition is already a boolean judgment
//   - Update payload: bool (true means tripped, i.e. not clear)
//   - No distinct acknowledgement path; clear updates go through the set path
//
// Threshold:
//   - Use for sensor readings with a single safe upper bound
//   - Update payload: float64 (the new reading)
//   - Implements the acknowledgement path: Clear installs a corrected reading
//
// Band:
//   - Use for readings that are unsafe both below and above a safe window
//   - Update payload: float64 (the new reading)
//   - Implements the acknowledgement path
//
// Custom guards can be implemented by satisfying the types.Interlockable
// interface, optionally together with types.Acknowledger.
package guard
