package types

// Interlockable is the capability contract a monitored value type must satisfy
// to be managed by an Interlock container.
//
// The type parameter T is the implementing type itself (used by Clone) and U is
// the update payload applied by Set. Implementations are expected to use
// pointer receivers so that Set can mutate the monitored value in place:
//
//	type PressureSensor struct { bar, limit float64 }
//
//	func (p *PressureSensor) IsClear() error {
//	    if p.bar > p.limit {
//	        return fmt.Errorf("pressure %v exceeds limit %v", p.bar, p.limit)
//	    }
//	    return nil
//	}
//	func (p *PressureSensor) Set(bar float64) { p.bar = bar }
//	func (p *PressureSensor) Clone() *PressureSensor { c := *p; return &c }
type Interlockable[T any, U any] interface {
	// IsClear reports whether the monitored value is currently in a safe state.
	//
	// A nil return means the value is clear. A non-nil error means the value is
	// not clear; the error describes the domain-specific reason. IsClear must
	// not mutate the value.
	IsClear() error

	// Set applies an update representing an ordinary state change of the
	// monitored value. It mutates the value in place and never fails at this
	// layer; any fallibility belongs to the monitored domain itself.
	Set(update U)

	// Clone returns an independent copy of the monitored value. Mutating the
	// returned copy must not affect the original.
	Clone() T
}

// Acknowledger is an optional extension of Interlockable for monitored value
// types that distinguish the act of clearing from an ordinary state change.
//
// Clear applies an update representing the domain's own acknowledgement or
// reset of the monitored condition. It differs from Set only in intent: the
// Interlock container never re-evaluates the latch on the clear path.
//
// Value types that do not implement Acknowledger receive updates through Set
// when the container's Clear operation is invoked.
type Acknowledger[U any] interface {
	// Clear applies an acknowledgement/reset update to the monitored value.
	Clear(update U)
}
