// Package testing provides helpers for testing code that embeds an interlock.
//
// It offers a scriptable Guard whose clearness is set directly by the test,
// and a Logger that forwards to the test log. Import it with an alias to
// avoid clashing with the standard testing package:
//
//	import interlocktesting "github.com/sigil-03/interlock/testing"
package testing
