package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
)

// Task is one document's end-to-end processing record. Optional fields are
// zero-valued until their stage sets them and are never cleared afterwards.
type Task struct {
	ID        uuid.UUID
	Status    constants.TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	SourceRef string
	Directive string

	RawText    string
	Structured stage.Document
	Reconciled stage.Document
	ReportRef  string
	Error      string
}

// Snapshot is a consistent, caller-owned copy of a Task. Mutating it never
// affects the store.
type Snapshot struct {
	ID        uuid.UUID
	Status    constants.TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	SourceRef string
	Directive string

	RawText    string
	Structured stage.Document
	Reconciled stage.Document
	ReportRef  string
	Error      string
}

func (t *Task) snapshot() Snapshot {
	return Snapshot{
		ID:         t.ID,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		SourceRef:  t.SourceRef,
		Directive:  t.Directive,
		RawText:    t.RawText,
		Structured: copyDocument(t.Structured),
		Reconciled: copyDocument(t.Reconciled),
		ReportRef:  t.ReportRef,
		Error:      t.Error,
	}
}

// copyDocument deep-copies the map/slice spine of a document so snapshots
// cannot alias store-owned memory. Leaf values are JSON scalars.
func copyDocument(d stage.Document) stage.Document {
	if d == nil {
		return nil
	}
	out := make(stage.Document, len(d))
	for k, v := range d {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	case stage.Document:
		return map[string]any(copyDocument(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
