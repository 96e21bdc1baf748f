package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/archive"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

// Stages bundles the four collaborator capabilities the pipeline drives.
type Stages struct {
	Text       stage.TextExtractor
	Structured stage.StructuredExtractor
	Reconciler stage.Reconciler
	Report     stage.ReportBuilder
}

// Orchestrator owns the per-task state machine. Each submitted task runs on
// its own goroutine: OCR and AI extraction fan out concurrently, a barrier
// joins them, then reconciliation and report generation run in sequence.
// Any stage failure is terminal for the task; re-processing is a new task.
type Orchestrator struct {
	store   *task.Store
	sink    logsink.Sink
	stages  Stages
	cfg     common.StageConfig
	archive archive.Archive
	logger  *slog.Logger

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
	wg      sync.WaitGroup
}

// New wires an orchestrator. arch may be nil to disable terminal archiving.
func New(store *task.Store, sink logsink.Sink, stages Stages, cfg common.StageConfig, arch archive.Archive, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OCRTimeout <= 0 {
		cfg.OCRTimeout = 2 * time.Minute
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = 2 * time.Minute
	}
	if cfg.ReconcileTimeout <= 0 {
		cfg.ReconcileTimeout = 2 * time.Minute
	}
	if cfg.ReportTimeout <= 0 {
		cfg.ReportTimeout = 30 * time.Second
	}
	return &Orchestrator{
		store:   store,
		sink:    sink,
		stages:  stages,
		cfg:     cfg,
		archive: arch,
		logger:  logger,
		cancels: make(map[uuid.UUID]context.CancelFunc),
	}
}

// SubmitRequest describes one document to process. IdempotencyKey is
// optional; a repeated key returns the original task instead of scheduling
// a duplicate pipeline.
type SubmitRequest struct {
	SourceRef      string
	Directive      string
	IdempotencyKey string
}

// Submit creates the task and schedules its pipeline, returning the task id
// immediately. Processing continues on a background context; the caller's
// ctx only covers submission itself.
func (o *Orchestrator) Submit(_ context.Context, req SubmitRequest) (uuid.UUID, error) {
	if req.SourceRef == "" {
		return uuid.Nil, fmt.Errorf("source_ref is required: %w", common.ErrInvalidInput)
	}

	id, existing := o.store.CreateIdempotent(req.SourceRef, req.Directive, req.IdempotencyKey)
	if existing {
		o.logger.Info("orchestrator.submit.deduplicated",
			"task_id", id, "idempotency_key", req.IdempotencyKey)
		return id, nil
	}

	o.sink.Append(id, logsink.LevelInfo, fmt.Sprintf("task received for source %s", req.SourceRef))
	o.logger.Info("orchestrator.submit", "task_id", id, "source_ref", req.SourceRef)

	runCtx, cancel := context.WithCancel(common.WithTaskID(context.Background(), id.String()))
	o.mu.Lock()
	o.cancels[id] = cancel
	o.mu.Unlock()

	o.wg.Add(1)
	go o.run(runCtx, id, req.SourceRef, req.Directive)
	return id, nil
}

// Cancel aborts an in-flight task. The interrupted stage surfaces as a
// failure with a cancellation cause. Cancelling an unknown task returns
// NotFound; cancelling a task that already reached a terminal state is a no-op.
func (o *Orchestrator) Cancel(id uuid.UUID) error {
	snap, err := o.store.Get(id)
	if err != nil {
		return err
	}
	if snap.Status.IsTerminal() {
		return nil
	}
	o.mu.Lock()
	cancel, ok := o.cancels[id]
	o.mu.Unlock()
	if ok {
		o.logger.Info("orchestrator.cancel", "task_id", id)
		cancel()
	}
	return nil
}

// Shutdown stops accepting work implicitly (callers stop submitting),
// cancels in-flight tasks, and waits for their goroutines to drain.
func (o *Orchestrator) Shutdown(ctx context.Context) {
	o.mu.Lock()
	for _, cancel := range o.cancels {
		cancel()
	}
	o.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); o.wg.Wait() }()

	select {
	case <-ctx.Done():
		o.logger.Warn("orchestrator shutdown interrupted by context")
	case <-done:
		o.logger.Info("orchestrator drained, shutdown complete")
	}
}

type branchResult struct {
	stage string
	text  stage.TextResult
	doc   stage.Document
	err   error
}

func (o *Orchestrator) run(ctx context.Context, id uuid.UUID, sourceRef, directive string) {
	defer o.wg.Done()
	defer func() {
		o.mu.Lock()
		if cancel, ok := o.cancels[id]; ok {
			cancel()
			delete(o.cancels, id)
		}
		o.mu.Unlock()
	}()

	if !o.transition(id, constants.TaskStatusProcessing) {
		return
	}
	o.sink.Append(id, logsink.LevelInfo, "scheduled ocr and ai_extract stages concurrently")

	// Fan-out: both extraction branches run independently; neither start
	// depends on the other. Results join here through a buffered channel so
	// an abandoned branch can still complete without leaking its goroutine.
	fanCtx, cancelFan := context.WithCancel(ctx)
	defer cancelFan()
	results := make(chan branchResult, 2)

	go func() {
		res, err := o.invokeText(fanCtx, sourceRef)
		results <- branchResult{stage: constants.StageOCR, text: res, err: err}
	}()
	go func() {
		doc, err := o.invokeStructured(fanCtx, sourceRef, directive)
		results <- branchResult{stage: constants.StageAIExtract, doc: doc, err: err}
	}()

	var rawText string
	var extracted stage.Document
	var firstErr error
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
				// Fail fast: abandon the sibling branch. Its eventual
				// result is discarded below.
				cancelFan()
				o.sink.Append(id, logsink.LevelError, fmt.Sprintf("stage %s failed: %v", r.stage, r.err))
			} else {
				o.logger.Debug("orchestrator.branch.ignored", "task_id", id, "stage", r.stage, "err", r.err)
			}
			continue
		}
		if firstErr != nil {
			o.sink.Append(id, logsink.LevelWarning,
				fmt.Sprintf("discarding %s result, task already failed", r.stage))
			continue
		}
		switch r.stage {
		case constants.StageOCR:
			rawText = r.text.Text
			_ = o.store.Update(id, func(t *task.Task) { t.RawText = r.text.Text })
			o.sink.Append(id, logsink.LevelInfo,
				fmt.Sprintf("ocr completed, extracted %d characters via %s", len(r.text.Text), r.text.Method))
		case constants.StageAIExtract:
			extracted = r.doc
			_ = o.store.Update(id, func(t *task.Task) { t.Structured = r.doc })
			o.sink.Append(id, logsink.LevelInfo,
				fmt.Sprintf("ai extraction completed with %d top-level fields", len(r.doc)))
		}
	}
	if firstErr != nil {
		o.fail(id, firstErr)
		return
	}

	// Fan-in barrier passed: both inputs are present.
	if !o.transition(id, constants.TaskStatusReconciling) {
		return
	}
	reconciled, err := o.invokeReconcile(ctx, extracted, rawText)
	if err != nil {
		o.sink.Append(id, logsink.LevelError, fmt.Sprintf("stage %s failed: %v", constants.StageReconcile, err))
		o.fail(id, err)
		return
	}
	_ = o.store.Update(id, func(t *task.Task) { t.Reconciled = reconciled })
	o.sink.Append(id, logsink.LevelInfo,
		fmt.Sprintf("reconciliation completed with %d top-level fields", len(reconciled)))

	if !o.transition(id, constants.TaskStatusBuildingReport) {
		return
	}
	reportRef, err := o.invokeReport(ctx, id, reconciled)
	if err != nil {
		o.sink.Append(id, logsink.LevelError, fmt.Sprintf("stage %s failed: %v", constants.StageReport, err))
		o.fail(id, err)
		return
	}
	_ = o.store.Update(id, func(t *task.Task) { t.ReportRef = reportRef })
	o.sink.Append(id, logsink.LevelInfo, fmt.Sprintf("report generated at %s", reportRef))

	if !o.transition(id, constants.TaskStatusCompleted) {
		return
	}
	o.sink.Append(id, logsink.LevelInfo, "workflow completed successfully")
	o.logger.Info("orchestrator.completed", "task_id", id, "report_ref", reportRef)
	o.archiveTerminal(id)
}

func (o *Orchestrator) invokeText(ctx context.Context, sourceRef string) (stage.TextResult, error) {
	ctx, cancel := common.WithTimeout(ctx, o.cfg.OCRTimeout)
	defer cancel()
	res, err := o.stages.Text.ExtractText(ctx, sourceRef)
	if err != nil {
		return res, classify(constants.StageOCR, err, o.cfg.OCRTimeout)
	}
	return res, nil
}

func (o *Orchestrator) invokeStructured(ctx context.Context, sourceRef, directive string) (stage.Document, error) {
	ctx, cancel := common.WithTimeout(ctx, o.cfg.ExtractTimeout)
	defer cancel()
	doc, err := o.stages.Structured.ExtractDocument(ctx, sourceRef, directive)
	if err != nil {
		return nil, classify(constants.StageAIExtract, err, o.cfg.ExtractTimeout)
	}
	return doc, nil
}

func (o *Orchestrator) invokeReconcile(ctx context.Context, extracted stage.Document, rawText string) (stage.Document, error) {
	ctx, cancel := common.WithTimeout(ctx, o.cfg.ReconcileTimeout)
	defer cancel()
	doc, err := o.stages.Reconciler.Reconcile(ctx, extracted, rawText)
	if err != nil {
		return nil, classify(constants.StageReconcile, err, o.cfg.ReconcileTimeout)
	}
	return doc, nil
}

func (o *Orchestrator) invokeReport(ctx context.Context, id uuid.UUID, doc stage.Document) (string, error) {
	ctx, cancel := common.WithTimeout(ctx, o.cfg.ReportTimeout)
	defer cancel()
	ref, err := o.stages.Report.BuildReport(ctx, id.String(), doc)
	if err != nil {
		return "", classify(constants.StageReport, err, o.cfg.ReportTimeout)
	}
	return ref, nil
}

// classify normalizes a stage failure into a stage.Error whose detail is
// safe to surface verbatim in Task.Error. Context expiry maps onto the
// timeout/cancellation causes of the error taxonomy.
func classify(stageName string, err error, timeout time.Duration) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &stage.Error{Stage: stageName, Detail: fmt.Sprintf("timed out after %s", timeout), Cause: common.ErrTimeout}
	case errors.Is(err, context.Canceled):
		return &stage.Error{Stage: stageName, Detail: "cancelled", Cause: common.ErrCancelled}
	}
	var se *stage.Error
	if errors.As(err, &se) {
		return se
	}
	return &stage.Error{Stage: stageName, Detail: err.Error(), Cause: err}
}

// transition moves the task along one state-machine edge, logging the prior
// state, the new state, and the time spent in the prior state. Mutators are
// applied inside the same store operation as the status change.
func (o *Orchestrator) transition(id uuid.UUID, to constants.TaskStatus, muts ...func(*task.Task)) bool {
	prev, elapsed, err := o.store.Transition(id, to, muts...)
	if err != nil {
		o.logger.Error("orchestrator.transition.rejected", "task_id", id, "to", to, "err", err)
		return false
	}
	o.sink.Append(id, logsink.LevelInfo,
		fmt.Sprintf("status changed from %s to %s after %s", prev, to, elapsed.Round(time.Millisecond)))
	o.logger.Info("orchestrator.transition",
		"task_id", id, "from", prev, "to", to, "elapsed_ms", elapsed.Milliseconds())
	return true
}

// fail records the terminal failure: the triggering stage and cause land
// verbatim in Task.Error, written in the same store operation as the status
// change so pollers never see failed with an empty error.
func (o *Orchestrator) fail(id uuid.UUID, cause error) {
	msg := cause.Error()
	o.transition(id, constants.TaskStatusFailed, func(t *task.Task) { t.Error = msg })
	o.sink.Append(id, logsink.LevelError, fmt.Sprintf("workflow failed: %s", msg))
	o.logger.Error("orchestrator.failed", "task_id", id, "err", msg)
	o.archiveTerminal(id)
}

// archiveTerminal best-effort copies the terminal record and its logs into
// the archive. Never affects task state.
func (o *Orchestrator) archiveTerminal(id uuid.UUID) {
	if o.archive == nil {
		return
	}
	snap, err := o.store.Get(id)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.archive.SaveTask(ctx, snap); err != nil {
		o.logger.Warn("orchestrator.archive.task_failed", "task_id", id, "err", err)
		return
	}
	if err := o.archive.SaveLogs(ctx, id, o.sink.Query(id)); err != nil {
		o.logger.Warn("orchestrator.archive.logs_failed", "task_id", id, "err", err)
	}
}
