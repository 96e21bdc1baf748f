package archive

import (
	"context"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

// Archive persists terminal task records and their log streams so they
// outlive the in-process store for the retention window. Archiving is
// best-effort from the orchestrator's point of view: failures are logged,
// never surfaced into task state.
type Archive interface {
	SaveTask(ctx context.Context, snap task.Snapshot) error
	SaveLogs(ctx context.Context, taskID uuid.UUID, entries []logsink.Entry) error
	GetTask(ctx context.Context, taskID uuid.UUID) (task.Snapshot, error)
	GetLogs(ctx context.Context, taskID uuid.UUID) ([]logsink.Entry, error)
	Close() error
}
