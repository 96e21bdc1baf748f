package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

func openTestArchive(t *testing.T) *SQLiteArchive {
	t.Helper()
	a, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "archive.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func terminalSnapshot(id uuid.UUID) task.Snapshot {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return task.Snapshot{
		ID:        id,
		Status:    constants.TaskStatusCompleted,
		CreatedAt: now.Add(-time.Minute),
		UpdatedAt: now,
		SourceRef: "docs/invoice.pdf",
		Directive: "totals only",
		RawText:   "Invoice #42",
		Structured: stage.Document{
			"key_value_pairs": map[string]any{"Invoice Number": "42"},
		},
		Reconciled: stage.Document{
			"key_value_pairs": map[string]any{"Invoice Number": "42"},
		},
		ReportRef: "/tmp/task_report.xlsx",
	}
}

func TestTaskRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, a.SaveTask(ctx, terminalSnapshot(id)))

	got, err := a.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, constants.TaskStatusCompleted, got.Status)
	assert.Equal(t, "docs/invoice.pdf", got.SourceRef)
	assert.Equal(t, "totals only", got.Directive)
	assert.Equal(t, "Invoice #42", got.RawText)
	assert.Equal(t, "/tmp/task_report.xlsx", got.ReportRef)
	assert.Empty(t, got.Error)

	kv, ok := got.Reconciled["key_value_pairs"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "42", kv["Invoice Number"])
}

func TestFailedTaskRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()
	id := uuid.New()

	snap := terminalSnapshot(id)
	snap.Status = constants.TaskStatusFailed
	snap.ReportRef = ""
	snap.Reconciled = nil
	snap.Error = "ai_extract: model rejected input"
	require.NoError(t, a.SaveTask(ctx, snap))

	got, err := a.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskStatusFailed, got.Status)
	assert.Equal(t, "ai_extract: model rejected input", got.Error)
	assert.Nil(t, got.Reconciled)
	assert.Empty(t, got.ReportRef)
}

func TestSaveTaskIsUpsert(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()
	id := uuid.New()

	snap := terminalSnapshot(id)
	require.NoError(t, a.SaveTask(ctx, snap))
	snap.ReportRef = "/tmp/rewritten.xlsx"
	require.NoError(t, a.SaveTask(ctx, snap))

	got, err := a.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rewritten.xlsx", got.ReportRef)
}

func TestGetTaskUnknown(t *testing.T) {
	a := openTestArchive(t)
	_, err := a.GetTask(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogsRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()
	id := uuid.New()

	base := time.Now().UTC().Truncate(time.Millisecond)
	entries := []logsink.Entry{
		{TaskID: id, Timestamp: base, Level: logsink.LevelInfo, Message: "task received for source docs/invoice.pdf"},
		{TaskID: id, Timestamp: base.Add(time.Second), Level: logsink.LevelError, Message: "stage ocr failed"},
	}
	require.NoError(t, a.SaveLogs(ctx, id, entries))

	got, err := a.GetLogs(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "task received for source docs/invoice.pdf", got[0].Message)
	assert.Equal(t, logsink.LevelError, got[1].Level)
	assert.True(t, got[0].Timestamp.Equal(base))

	// Re-archiving replaces rather than appends.
	require.NoError(t, a.SaveLogs(ctx, id, entries[:1]))
	got, err = a.GetLogs(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLogsForUnknownTaskAreEmpty(t *testing.T) {
	a := openTestArchive(t)
	got, err := a.GetLogs(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}
