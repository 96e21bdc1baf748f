package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	tasksv1 "github.com/joseph-ayodele/pdf-reconciler/gen/proto/tasks/v1"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/orchestrator"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

// Engine is the slice of the orchestrator the service needs; tests swap in
// a fake.
type Engine interface {
	Submit(ctx context.Context, req orchestrator.SubmitRequest) (uuid.UUID, error)
	Status(id uuid.UUID) (task.Snapshot, error)
	Logs(id uuid.UUID) ([]logsink.Entry, error)
	Report(id uuid.UUID) (string, error)
	Cancel(id uuid.UUID) error
}

type TasksService struct {
	tasksv1.UnimplementedTasksServiceServer
	engine Engine
	logger *slog.Logger
}

func NewTasksService(engine Engine, logger *slog.Logger) *TasksService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TasksService{engine: engine, logger: logger}
}

// SubmitDocument implements tasksv1.TasksServiceServer
func (s *TasksService) SubmitDocument(ctx context.Context, req *tasksv1.SubmitDocumentRequest) (*tasksv1.SubmitDocumentResponse, error) {
	sourceRef := req.GetSourceRef()
	if sourceRef == "" {
		return nil, common.InvalidArgumentError("source_ref is required")
	}

	id, err := s.engine.Submit(ctx, orchestrator.SubmitRequest{
		SourceRef:      sourceRef,
		Directive:      req.GetDirective(),
		IdempotencyKey: req.GetIdempotencyKey(),
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("server.submit.failed",
			"req_id", common.RequestIDFromContext(ctx), "source_ref", sourceRef, "err", err)
		return nil, common.InternalError("submit failed")
	}

	s.logger.Info("server.submit.ok",
		"req_id", common.RequestIDFromContext(ctx), "task_id", id, "source_ref", sourceRef)
	return &tasksv1.SubmitDocumentResponse{TaskId: id.String()}, nil
}

// GetTaskStatus implements tasksv1.TasksServiceServer
func (s *TasksService) GetTaskStatus(ctx context.Context, req *tasksv1.GetTaskStatusRequest) (*tasksv1.GetTaskStatusResponse, error) {
	id, err := parseTaskID(req.GetTaskId())
	if err != nil {
		return nil, err
	}

	snap, err := s.engine.Status(id)
	if err != nil {
		return nil, mapQueryError(err)
	}

	return &tasksv1.GetTaskStatusResponse{
		TaskId:    snap.ID.String(),
		Status:    string(snap.Status),
		Error:     snap.Error,
		ReportRef: snap.ReportRef,
		CreatedAt: snap.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: snap.UpdatedAt.Format(time.RFC3339Nano),
	}, nil
}

// GetTaskLogs implements tasksv1.TasksServiceServer
func (s *TasksService) GetTaskLogs(ctx context.Context, req *tasksv1.GetTaskLogsRequest) (*tasksv1.GetTaskLogsResponse, error) {
	id, err := parseTaskID(req.GetTaskId())
	if err != nil {
		return nil, err
	}

	snap, err := s.engine.Status(id)
	if err != nil {
		return nil, mapQueryError(err)
	}
	entries, err := s.engine.Logs(id)
	if err != nil {
		return nil, mapQueryError(err)
	}

	out := make([]*tasksv1.TaskLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &tasksv1.TaskLogEntry{
			Timestamp: e.Timestamp.Format(time.RFC3339Nano),
			Level:     string(e.Level),
			Message:   e.Message,
		})
	}
	return &tasksv1.GetTaskLogsResponse{
		TaskId: id.String(),
		Status: string(snap.Status),
		Logs:   out,
	}, nil
}

// GetReport implements tasksv1.TasksServiceServer
func (s *TasksService) GetReport(ctx context.Context, req *tasksv1.GetReportRequest) (*tasksv1.GetReportResponse, error) {
	id, err := parseTaskID(req.GetTaskId())
	if err != nil {
		return nil, err
	}

	ref, err := s.engine.Report(id)
	if err != nil {
		if errors.Is(err, common.ErrNotReady) {
			return nil, common.FailedPreconditionError(err.Error())
		}
		return nil, mapQueryError(err)
	}
	return &tasksv1.GetReportResponse{ReportRef: ref}, nil
}

// CancelTask implements tasksv1.TasksServiceServer
func (s *TasksService) CancelTask(ctx context.Context, req *tasksv1.CancelTaskRequest) (*tasksv1.CancelTaskResponse, error) {
	id, err := parseTaskID(req.GetTaskId())
	if err != nil {
		return nil, err
	}

	if err := s.engine.Cancel(id); err != nil {
		return nil, mapQueryError(err)
	}
	return &tasksv1.CancelTaskResponse{Cancelled: true}, nil
}

func parseTaskID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("task_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("task_id %q is not a valid UUID", raw)
	}
	return id, nil
}

func mapQueryError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError("task not found")
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	default:
		return common.InternalError("query failed")
	}
}
