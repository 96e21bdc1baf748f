package constants

// TaskStatus is the canonical status for a processing task.
type TaskStatus string

// Stable values (these exact strings cross the wire and land in the archive).
const (
	TaskStatusReceived       TaskStatus = "received"                  // created, pipeline not yet scheduled
	TaskStatusProcessing     TaskStatus = "processing"                // OCR and AI extraction both in flight
	TaskStatusReconciling    TaskStatus = "processing_reconciliation" // fan-in done, reconciler running
	TaskStatusBuildingReport TaskStatus = "generating_report"         // reconciled, report builder running
	TaskStatusCompleted      TaskStatus = "completed"                 // terminal success
	TaskStatusFailed         TaskStatus = "failed"                    // terminal failure
)

// validTransitions holds the only legal edges of the task state machine.
// failed is reachable from every non-terminal state.
var validTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusReceived:       {TaskStatusProcessing, TaskStatusFailed},
	TaskStatusProcessing:     {TaskStatusReconciling, TaskStatusFailed},
	TaskStatusReconciling:    {TaskStatusBuildingReport, TaskStatusFailed},
	TaskStatusBuildingReport: {TaskStatusCompleted, TaskStatusFailed},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transitions leave the given status.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

func (s TaskStatus) String() string { return string(s) }
