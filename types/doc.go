// Package types defines the core types and interfaces for the interlock library.
//
// This package exists so that internal packages (logger, metrics) can depend on
// the shared definitions without importing the root interlock package. Users
// normally interact with the aliases re-exported from the root package
// (interlock.State, interlock.Interlockable, etc.) rather than importing this
// package directly.
package types
