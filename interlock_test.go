package interlock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	interlocktesting "github.com/sigil-03/interlock/testing"
)

var errNotClear = errors.New("not clear")

// tripGuard mirrors the simplest monitored value: a boolean where true means
// not clear. It has no acknowledgement path, so container Clear calls are
// routed through Set.
type tripGuard struct {
	tripped bool
}

func (g *tripGuard) IsClear() error {
	if g.tripped {
		return errNotClear
	}

	return nil
}

func (g *tripGuard) Set(tripped bool) {
	g.tripped = tripped
}

func (g *tripGuard) Clone() *tripGuard {
	c := *g
	return &c
}

// ackGuard extends tripGuard with a distinct acknowledgement path.
type ackGuard struct {
	tripGuard
	clears int
}

func (g *ackGuard) Clear(tripped bool) {
	g.tripped = tripped
	g.clears++
}

func (g *ackGuard) Clone() *ackGuard {
	c := *g
	return &c
}

// recordingMetrics captures collector calls for fan-out assertions.
type recordingMetrics struct {
	transitions []string
	attempts    []bool
	active      []bool
}

func (m *recordingMetrics) RecordStateTransition(from, to State) {
	m.transitions = append(m.transitions, from.String()+"->"+to.String())
}

func (m *recordingMetrics) RecordClearAttempt(success bool) {
	m.attempts = append(m.attempts, success)
}

func (m *recordingMetrics) SetLatchActive(active bool) {
	m.active = append(m.active, active)
}

func TestNew_StartsInactive(t *testing.T) {
	t.Run("clear initial value", func(t *testing.T) {
		il := New[*tripGuard, bool](&tripGuard{tripped: false})
		require.Equal(t, StateInactive, il.State())
	})

	t.Run("not-clear initial value", func(t *testing.T) {
		// The latch starts inactive unconditionally; no clearness check at
		// construction time.
		il := New[*tripGuard, bool](&tripGuard{tripped: true})
		require.Equal(t, StateInactive, il.State())
	})
}

func TestTryClear(t *testing.T) {
	t.Run("succeeds on clear value", func(t *testing.T) {
		il := New[*tripGuard, bool](&tripGuard{tripped: false})

		require.NoError(t, il.TryClear())
		require.Equal(t, StateInactive, il.State())
	})

	t.Run("fails on not-clear value", func(t *testing.T) {
		// Clearness is evaluated independently of the latch: the attempt is
		// rejected even though the latch was never asserted.
		il := New[*tripGuard, bool](&tripGuard{tripped: true})

		err := il.TryClear()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrClearFailed)
		require.Equal(t, StateInactive, il.State())
	})
}

func TestSet_AssertsInterlock(t *testing.T) {
	il := New[*tripGuard, bool](&tripGuard{tripped: false},
		WithLogger(interlocktesting.NewTestLogger(t)),
	)
	require.Equal(t, StateInactive, il.State())

	// Driving the value not-clear asserts the latch.
	il.Set(true)
	require.Equal(t, StateActive, il.State())

	// The latch holds even after the value returns to clear.
	il.Set(false)
	require.Equal(t, StateActive, il.State())

	// Only an explicit, successful confirmation releases it.
	require.NoError(t, il.TryClear())
	require.Equal(t, StateInactive, il.State())
}

func TestSet_IdempotentWhenActive(t *testing.T) {
	il := New[*tripGuard, bool](&tripGuard{tripped: false})

	il.Set(true)
	require.Equal(t, StateActive, il.State())

	// Further not-clear updates keep the latch asserted without a redundant
	// transition.
	il.Set(true)
	il.Set(true)
	require.Equal(t, StateActive, il.State())
}

func TestTryClear_RejectedWhileActive(t *testing.T) {
	il := New[*tripGuard, bool](&tripGuard{tripped: false})

	il.Set(true)
	require.Equal(t, StateActive, il.State())

	// Confirmation fails while the value is not clear and the latch holds.
	require.ErrorIs(t, il.TryClear(), ErrClearFailed)
	require.Equal(t, StateActive, il.State())

	il.Set(false)
	require.NoError(t, il.TryClear())
	require.Equal(t, StateInactive, il.State())
}

func TestClear_NeverTouchesLatch(t *testing.T) {
	t.Run("acknowledgement path", func(t *testing.T) {
		il := New[*ackGuard, bool](&ackGuard{})

		il.Set(true)
		require.Equal(t, StateActive, il.State())

		// The clear update reaches the value's own Clear method and the
		// latch stays asserted.
		il.Clear(false)
		require.Equal(t, StateActive, il.State())

		inner := il.Inner()
		require.False(t, inner.tripped)
		require.Equal(t, 1, inner.clears)

		require.NoError(t, il.TryClear())
		require.Equal(t, StateInactive, il.State())
	})

	t.Run("set-path fallback", func(t *testing.T) {
		// tripGuard has no acknowledgement path; the update falls back to
		// Set, still without latch re-evaluation.
		il := New[*tripGuard, bool](&tripGuard{})

		il.Set(true)
		require.Equal(t, StateActive, il.State())

		il.Clear(false)
		require.Equal(t, StateActive, il.State())
		require.False(t, il.Inner().tripped)
	})

	t.Run("clear update cannot assert", func(t *testing.T) {
		// A clear-path update that drives the value not-clear does not
		// assert the latch either; only the set path is evaluated.
		il := New[*ackGuard, bool](&ackGuard{})

		il.Clear(true)
		require.Equal(t, StateInactive, il.State())
	})
}

func TestInner_CopyIsolation(t *testing.T) {
	il := New[*tripGuard, bool](&tripGuard{tripped: false})

	copied := il.Inner()
	copied.Set(true)

	// The container's own value is unaffected by mutations of the copy.
	require.False(t, il.Inner().tripped)
	require.NoError(t, il.TryClear())
}

func TestRead_VisitsLiveValue(t *testing.T) {
	il := New[*tripGuard, bool](&tripGuard{})
	il.Set(true)

	var seen bool
	il.Read(func(g *tripGuard) {
		seen = g.tripped
	})
	require.True(t, seen)
}

func TestNew_NilSafety(t *testing.T) {
	// Without any options the optional collaborators default to no-ops.
	il := New[*tripGuard, bool](&tripGuard{})

	require.NotNil(t, il.logger)
	require.NotNil(t, il.metrics)
	require.Nil(t, il.hooks)

	require.NotPanics(t, func() {
		il.Set(true)
		_ = il.TryClear()
		il.transitionState(StateActive, StateInactive)
	})
}

func TestHooks(t *testing.T) {
	var (
		changes  []string
		asserted []error
		cleared  int
	)

	hooks := &Hooks{
		OnStateChanged: func(from, to State) {
			changes = append(changes, from.String()+"->"+to.String())
		},
		OnAsserted: func(reason error) {
			asserted = append(asserted, reason)
		},
		OnCleared: func() {
			cleared++
		},
	}

	il := New[*tripGuard, bool](&tripGuard{}, WithHooks(hooks))

	// Trivial confirmation on an inactive latch fires no hooks.
	require.NoError(t, il.TryClear())
	require.Empty(t, changes)
	require.Zero(t, cleared)

	il.Set(true)
	require.Equal(t, []string{"Inactive->Active"}, changes)
	require.Len(t, asserted, 1)
	require.ErrorIs(t, asserted[0], errNotClear)

	// Repeated assertion does not re-fire.
	il.Set(true)
	require.Len(t, asserted, 1)

	il.Set(false)
	require.NoError(t, il.TryClear())
	require.Equal(t, []string{"Inactive->Active", "Active->Inactive"}, changes)
	require.Equal(t, 1, cleared)
}

func TestMetricsFanOut(t *testing.T) {
	m := &recordingMetrics{}
	il := New[*tripGuard, bool](&tripGuard{}, WithMetrics(m))

	// Construction publishes the initial gauge position.
	require.Equal(t, []bool{false}, m.active)

	il.Set(true)
	require.Equal(t, []string{"Inactive->Active"}, m.transitions)
	require.Equal(t, []bool{false, true}, m.active)

	require.ErrorIs(t, il.TryClear(), ErrClearFailed)
	require.Equal(t, []bool{false}, m.attempts)

	il.Set(false)
	require.NoError(t, il.TryClear())
	require.Equal(t, []bool{false, true}, m.attempts)
	require.Equal(t, []string{"Inactive->Active", "Active->Inactive"}, m.transitions)
	require.Equal(t, []bool{false, true, false}, m.active)
}

func TestScriptableGuard(t *testing.T) {
	// The testing.Guard fake scripts clearness directly with the reason as
	// the update payload.
	g := interlocktesting.NewGuard(nil)
	il := New[*interlocktesting.Guard, error](g, WithLogger(interlocktesting.NewTestLogger(t)))

	il.Set(errNotClear)
	require.Equal(t, StateActive, il.State())

	il.Clear(nil)
	require.Equal(t, StateActive, il.State())

	inner := il.Inner()
	require.Equal(t, 1, inner.SetCalls())
	require.Equal(t, 1, inner.ClearCalls())

	require.NoError(t, il.TryClear())
	require.Equal(t, StateInactive, il.State())
}
