package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	tasksv1 "github.com/joseph-ayodele/pdf-reconciler/gen/proto/tasks/v1"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/orchestrator"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

type fakeEngine struct {
	submitID   uuid.UUID
	submitErr  error
	lastSubmit orchestrator.SubmitRequest

	snap      task.Snapshot
	statusErr error

	logs    []logsink.Entry
	logsErr error

	reportRef string
	reportErr error

	cancelErr error
	cancelled []uuid.UUID
}

func (f *fakeEngine) Submit(_ context.Context, req orchestrator.SubmitRequest) (uuid.UUID, error) {
	f.lastSubmit = req
	return f.submitID, f.submitErr
}

func (f *fakeEngine) Status(uuid.UUID) (task.Snapshot, error) { return f.snap, f.statusErr }

func (f *fakeEngine) Logs(uuid.UUID) ([]logsink.Entry, error) { return f.logs, f.logsErr }

func (f *fakeEngine) Report(uuid.UUID) (string, error) { return f.reportRef, f.reportErr }

func (f *fakeEngine) Cancel(id uuid.UUID) error {
	f.cancelled = append(f.cancelled, id)
	return f.cancelErr
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a grpc status error, got %v", err)
	assert.Equal(t, want, st.Code())
}

func TestSubmitDocument(t *testing.T) {
	id := uuid.New()
	eng := &fakeEngine{submitID: id}
	svc := NewTasksService(eng, nil)

	resp, err := svc.SubmitDocument(context.Background(), &tasksv1.SubmitDocumentRequest{
		SourceRef:      "docs/invoice.pdf",
		Directive:      "totals only",
		IdempotencyKey: "upload-abc",
	})
	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.GetTaskId())
	assert.Equal(t, "docs/invoice.pdf", eng.lastSubmit.SourceRef)
	assert.Equal(t, "totals only", eng.lastSubmit.Directive)
	assert.Equal(t, "upload-abc", eng.lastSubmit.IdempotencyKey)
}

func TestSubmitDocumentRequiresSourceRef(t *testing.T) {
	svc := NewTasksService(&fakeEngine{}, nil)
	_, err := svc.SubmitDocument(context.Background(), &tasksv1.SubmitDocumentRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

func TestSubmitDocumentEngineRejection(t *testing.T) {
	eng := &fakeEngine{submitErr: common.ErrInvalidInput}
	svc := NewTasksService(eng, nil)
	_, err := svc.SubmitDocument(context.Background(), &tasksv1.SubmitDocumentRequest{SourceRef: "x"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestGetTaskStatus(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	eng := &fakeEngine{snap: task.Snapshot{
		ID:        id,
		Status:    constants.TaskStatusCompleted,
		CreatedAt: now.Add(-time.Minute),
		UpdatedAt: now,
		ReportRef: "/tmp/report.xlsx",
	}}
	svc := NewTasksService(eng, nil)

	resp, err := svc.GetTaskStatus(context.Background(), &tasksv1.GetTaskStatusRequest{TaskId: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.GetTaskId())
	assert.Equal(t, "completed", resp.GetStatus())
	assert.Equal(t, "/tmp/report.xlsx", resp.GetReportRef())
	assert.Empty(t, resp.GetError())
	assert.Equal(t, now.Format(time.RFC3339Nano), resp.GetUpdatedAt())
}

func TestGetTaskStatusValidation(t *testing.T) {
	svc := NewTasksService(&fakeEngine{}, nil)

	_, err := svc.GetTaskStatus(context.Background(), &tasksv1.GetTaskStatusRequest{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.GetTaskStatus(context.Background(), &tasksv1.GetTaskStatusRequest{TaskId: "not-a-uuid"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestGetTaskStatusNotFound(t *testing.T) {
	svc := NewTasksService(&fakeEngine{statusErr: common.ErrNotFound}, nil)
	_, err := svc.GetTaskStatus(context.Background(), &tasksv1.GetTaskStatusRequest{TaskId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestGetTaskLogs(t *testing.T) {
	id := uuid.New()
	ts := time.Now().UTC()
	eng := &fakeEngine{
		snap: task.Snapshot{ID: id, Status: constants.TaskStatusProcessing},
		logs: []logsink.Entry{
			{TaskID: id, Timestamp: ts, Level: logsink.LevelInfo, Message: "task received for source docs/invoice.pdf"},
			{TaskID: id, Timestamp: ts.Add(time.Second), Level: logsink.LevelError, Message: "stage ocr failed"},
		},
	}
	svc := NewTasksService(eng, nil)

	resp, err := svc.GetTaskLogs(context.Background(), &tasksv1.GetTaskLogsRequest{TaskId: id.String()})
	require.NoError(t, err)
	assert.Equal(t, "processing", resp.GetStatus())
	require.Len(t, resp.GetLogs(), 2)
	assert.Equal(t, "info", resp.GetLogs()[0].GetLevel())
	assert.Equal(t, "stage ocr failed", resp.GetLogs()[1].GetMessage())
	assert.Equal(t, ts.Format(time.RFC3339Nano), resp.GetLogs()[0].GetTimestamp())
}

func TestGetTaskLogsNotFound(t *testing.T) {
	svc := NewTasksService(&fakeEngine{statusErr: common.ErrNotFound}, nil)
	_, err := svc.GetTaskLogs(context.Background(), &tasksv1.GetTaskLogsRequest{TaskId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestGetReport(t *testing.T) {
	eng := &fakeEngine{reportRef: "/tmp/report.xlsx"}
	svc := NewTasksService(eng, nil)

	resp, err := svc.GetReport(context.Background(), &tasksv1.GetReportRequest{TaskId: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/report.xlsx", resp.GetReportRef())
}

func TestGetReportNotReady(t *testing.T) {
	eng := &fakeEngine{reportErr: common.ErrNotReady}
	svc := NewTasksService(eng, nil)
	_, err := svc.GetReport(context.Background(), &tasksv1.GetReportRequest{TaskId: uuid.NewString()})
	requireCode(t, err, codes.FailedPrecondition)
}

func TestGetReportNotFound(t *testing.T) {
	eng := &fakeEngine{reportErr: common.ErrNotFound}
	svc := NewTasksService(eng, nil)
	_, err := svc.GetReport(context.Background(), &tasksv1.GetReportRequest{TaskId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestCancelTask(t *testing.T) {
	id := uuid.New()
	eng := &fakeEngine{}
	svc := NewTasksService(eng, nil)

	resp, err := svc.CancelTask(context.Background(), &tasksv1.CancelTaskRequest{TaskId: id.String()})
	require.NoError(t, err)
	assert.True(t, resp.GetCancelled())
	require.Len(t, eng.cancelled, 1)
	assert.Equal(t, id, eng.cancelled[0])
}

func TestCancelTaskNotFound(t *testing.T) {
	eng := &fakeEngine{cancelErr: common.ErrNotFound}
	svc := NewTasksService(eng, nil)
	_, err := svc.CancelTask(context.Background(), &tasksv1.CancelTaskRequest{TaskId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}
