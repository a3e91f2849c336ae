// Package metrics provides MetricsCollector implementations for the interlock
// library.
package metrics

import "github.com/sigil-03/interlock/types"

// NopMetrics is a no-op metrics collector that discards all recordings.
//
// It is the default collector of an Interlock constructed without WithMetrics.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordStateTransition discards the transition event.
func (n *NopMetrics) RecordStateTransition(_ /* from */, _ /* to */ types.State) {}

// RecordClearAttempt discards the attempt.
func (n *NopMetrics) RecordClearAttempt(_ /* success */ bool) {}

// SetLatchActive discards the gauge update.
func (n *NopMetrics) SetLatchActive(_ /* active */ bool) {}
