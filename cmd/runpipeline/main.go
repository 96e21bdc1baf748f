package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/export"
	"github.com/joseph-ayodele/pdf-reconciler/internal/llm/openai"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/ocr"
	"github.com/joseph-ayodele/pdf-reconciler/internal/orchestrator"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

// runpipeline pushes a single local document through the full pipeline and
// prints the terminal status: handy for smoke-testing collaborators without
// standing up the daemon.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	directive := flag.String("directive", "", "optional extraction directive")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall wait for the pipeline")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runpipeline [-directive ...] <document-path>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read document", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY required")
		os.Exit(1)
	}

	llmClient := openai.NewClient(openai.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		Timeout:        cfg.LLM.Timeout,
		RepairSections: true,
	}, logger)
	stages := orchestrator.Stages{
		Text: ocr.NewExtractor(ocr.Config{
			Pdftotext:     cfg.OCR.Pdftotext,
			Tesseract:     cfg.OCR.Tesseract,
			TesseractLang: cfg.OCR.TesseractLang,
			PSM:           cfg.OCR.PSM,
		}, logger),
		Structured: llmClient,
		Reconciler: llmClient,
		Report:     export.NewBuilder(cfg.Export.ArtifactDir, logger),
	}

	store := task.NewStore()
	sink := logsink.NewMemorySink()
	engine := orchestrator.New(store, sink, stages, cfg.Stages, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	id, err := engine.Submit(ctx, orchestrator.SubmitRequest{
		SourceRef: path,
		Directive: *directive,
	})
	if err != nil {
		logger.Error("submit failed", "error", err)
		os.Exit(1)
	}
	logger.Info("task submitted", "task_id", id)

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Error("timed out waiting for pipeline", "task_id", id)
			os.Exit(1)
		case <-ticker.C:
		}

		snap, err := engine.Status(id)
		if err != nil {
			logger.Error("status query failed", "error", err)
			os.Exit(1)
		}
		if !snap.Status.IsTerminal() {
			continue
		}

		for _, e := range sink.Query(id) {
			logger.Info("task log", "ts", e.Timestamp.Format(time.RFC3339), "level", e.Level, "msg", e.Message)
		}
		if snap.Error != "" {
			logger.Error("pipeline failed", "task_id", id, "status", snap.Status, "err", snap.Error)
			os.Exit(1)
		}
		logger.Info("pipeline completed", "task_id", id, "report_ref", snap.ReportRef)
		return
	}
}
