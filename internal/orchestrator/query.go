package orchestrator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

// Status returns a read-only snapshot of the task. It never blocks on
// in-flight stage execution: the store hands out copies under a read lock.
func (o *Orchestrator) Status(id uuid.UUID) (task.Snapshot, error) {
	return o.store.Get(id)
}

// Logs returns the task's log entries, oldest first.
func (o *Orchestrator) Logs(id uuid.UUID) ([]logsink.Entry, error) {
	if _, err := o.store.Get(id); err != nil {
		return nil, err
	}
	return o.sink.Query(id), nil
}

// Report returns the report reference for a completed task. Requesting it
// earlier is a contract violation surfaced as ErrNotReady; a failed task
// reports its failure instead.
func (o *Orchestrator) Report(id uuid.UUID) (string, error) {
	snap, err := o.store.Get(id)
	if err != nil {
		return "", err
	}
	if snap.Status != constants.TaskStatusCompleted {
		return "", fmt.Errorf("task %s is %s: %w", id, snap.Status, common.ErrNotReady)
	}
	return snap.ReportRef, nil
}
