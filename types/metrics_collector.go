package types

// MetricsCollector defines methods for recording interlock operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully. All
// methods are called synchronously from container operations.
type MetricsCollector interface {
	// RecordStateTransition records a latch state transition event.
	RecordStateTransition(from, to State)

	// RecordClearAttempt records a clear confirmation attempt.
	//
	// Parameters:
	//   - success: true if the confirmation succeeded, false if it was
	//     rejected because the monitored value was not clear
	RecordClearAttempt(success bool)

	// SetLatchActive sets the current latch position (gauge metric).
	SetLatchActive(active bool)
}
