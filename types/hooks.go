package types

// Hooks defines callbacks for interlock latch lifecycle events.
//
// All hooks are optional and invoked synchronously from the container
// operation that triggered them, on the caller's goroutine. The container is
// single-threaded, so hooks need no internal synchronization, but they run
// inside Set and TryClear and should complete quickly.
//
// Example:
//
//	hooks := &interlock.Hooks{
//	    OnAsserted: func(reason error) {
//	        alarm.Raise(reason)
//	    },
//	}
type Hooks struct {
	// OnStateChanged is called when the latch transitions between states.
	OnStateChanged func(from, to State)

	// OnAsserted is called when the latch transitions to StateActive.
	// reason is the diagnostic returned by the monitored value's IsClear.
	OnAsserted func(reason error)

	// OnCleared is called when a successful clear confirmation transitions
	// the latch from StateActive back to StateInactive. It is not called for
	// trivially successful confirmations on an already-inactive latch.
	OnCleared func()
}
