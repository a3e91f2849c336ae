package interlock

import (
	"github.com/sigil-03/interlock/internal/logger"
	"github.com/sigil-03/interlock/internal/metrics"
)

// Interlock owns one monitored value of type T and a two-state latch.
//
// All mutation of the monitored value must go through Set and Clear; the
// container re-evaluates clearness after every set-path update and asserts the
// latch when the value stops being clear. Once asserted, the latch stays
// asserted until TryClear succeeds, regardless of later value changes.
//
// The container is not safe for concurrent use. Every operation requires
// exclusive access; callers embedding it in a multi-threaded host must supply
// their own mutual exclusion.
type Interlock[T Interlockable[T, U], U any] struct {
	inner T
	state State

	logger  Logger
	metrics MetricsCollector
	hooks   *Hooks
}

// New creates an Interlock owning the given monitored value.
//
// The latch always starts at StateInactive, regardless of whether the initial
// value is clear. The type arguments cannot be inferred from the value alone
// and must be supplied explicitly.
//
// Parameters:
//   - inner: Initial monitored value; the container takes ownership and the
//     value must not be mutated from outside afterwards
//   - opts: Optional collaborators (logger, metrics, hooks)
//
// Returns:
//   - *Interlock[T, U]: Container with an inactive latch
//
// Example:
//
//	il := interlock.New[*guard.Threshold, float64](guard.NewThreshold(10))
func New[T Interlockable[T, U], U any](inner T, opts ...Option) *Interlock[T, U] {
	options := &interlockOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Optional collaborators default to no-ops so internal call sites never
	// need nil checks.
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	il := &Interlock[T, U]{
		inner:   inner,
		state:   StateInactive,
		logger:  options.logger,
		metrics: options.metrics,
		hooks:   options.hooks,
	}
	il.metrics.SetLatchActive(false)

	return il
}

// Set applies an ordinary update to the monitored value and asserts the latch
// if the value is no longer clear.
//
// The update is forwarded to the value's Set path, then clearness is
// re-evaluated. If the value is not clear and the latch is inactive, the latch
// transitions to StateActive. If the latch is already active, nothing changes.
// If the value is clear, the latch is left untouched whatever its position;
// Set is never a clearing action.
func (il *Interlock[T, U]) Set(update U) {
	il.inner.Set(update)

	if il.state == StateActive {
		return
	}

	if err := il.inner.IsClear(); err != nil {
		il.logger.Warn("monitored value not clear, asserting interlock", "reason", err)
		il.transitionState(StateInactive, StateActive)
		if il.hooks != nil && il.hooks.OnAsserted != nil {
			il.hooks.OnAsserted(err)
		}
	}
}

// Clear applies an acknowledgement/reset update to the monitored value.
//
// The update is forwarded to the value's Clear path when it implements
// Acknowledger, and to its Set path otherwise. Either way the latch is never
// touched: clearing the latch is a separate, explicit act via TryClear.
func (il *Interlock[T, U]) Clear(update U) {
	if ack, ok := any(il.inner).(Acknowledger[U]); ok {
		ack.Clear(update)
		return
	}
	il.inner.Set(update)
}

// TryClear attempts to confirm that the interlock may be cleared.
//
// Clearness is evaluated without consulting the latch: if the monitored value
// is currently clear, the latch is set to StateInactive (trivially succeeding
// when it already was) and nil is returned. If the value is not clear,
// ErrClearFailed is returned and the latch is left unchanged, whatever its
// position.
//
// Returns:
//   - error: nil on success, ErrClearFailed when the monitored value reports
//     not-clear. The value's own diagnostic is logged but not propagated.
func (il *Interlock[T, U]) TryClear() error {
	if err := il.inner.IsClear(); err != nil {
		il.logger.Debug("clear confirmation rejected", "reason", err)
		il.metrics.RecordClearAttempt(false)

		return ErrClearFailed
	}

	il.metrics.RecordClearAttempt(true)

	prev := il.state
	il.transitionState(prev, StateInactive)
	if prev == StateActive && il.hooks != nil && il.hooks.OnCleared != nil {
		il.hooks.OnCleared()
	}

	return nil
}

// State returns the current latch state.
func (il *Interlock[T, U]) State() State {
	return il.state
}

// Inner returns an independent copy of the monitored value.
//
// Mutating the returned copy never affects the container's own value.
func (il *Interlock[T, U]) Inner() T {
	return il.inner.Clone()
}

// Read invokes fn with the current monitored value without copying it.
//
// fn must treat the value as read-only and must not retain it beyond the
// call. Use Inner when an independent copy is needed instead.
func (il *Interlock[T, U]) Read(fn func(value T)) {
	fn(il.inner)
}

// transitionState moves the latch between states and fans the event out to
// the logger, metrics collector, and hooks. No-op when from == to.
func (il *Interlock[T, U]) transitionState(from, to State) {
	if from == to {
		return
	}

	il.state = to
	il.logger.Info("interlock state changed", "from", from.String(), "to", to.String())
	il.metrics.RecordStateTransition(from, to)
	il.metrics.SetLatchActive(to == StateActive)

	if il.hooks != nil && il.hooks.OnStateChanged != nil {
		il.hooks.OnStateChanged(from, to)
	}
}
