package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	tasksv1 "github.com/joseph-ayodele/pdf-reconciler/gen/proto/tasks/v1"
	"github.com/joseph-ayodele/pdf-reconciler/internal/archive"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/export"
	"github.com/joseph-ayodele/pdf-reconciler/internal/llm/openai"
	"github.com/joseph-ayodele/pdf-reconciler/internal/logsink"
	"github.com/joseph-ayodele/pdf-reconciler/internal/ocr"
	"github.com/joseph-ayodele/pdf-reconciler/internal/orchestrator"
	"github.com/joseph-ayodele/pdf-reconciler/internal/server"
	"github.com/joseph-ayodele/pdf-reconciler/internal/task"
)

func main() {
	// Logger
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	log := zlog.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Terminal-task archive (optional)
	var arch archive.Archive
	if cfg.Archive.DSN != "" {
		var err error
		switch cfg.Archive.Driver {
		case "postgres":
			arch, err = archive.OpenPostgres(ctx, archive.PGConfig{
				DSN:             cfg.Archive.DSN,
				MaxConns:        10,
				MinConns:        1,
				MaxConnLifetime: 30 * time.Minute,
				MaxConnIdleTime: 5 * time.Minute,
				DialTimeout:     3 * time.Second,
			}, slogger)
		default:
			arch, err = archive.OpenSQLite(ctx, cfg.Archive.DSN, slogger)
		}
		if err != nil {
			log.Fatalf("opening archive: %v", err)
		}
		defer func() {
			if cerr := arch.Close(); cerr != nil {
				log.Errorf("closing archive: %v", cerr)
			}
		}()
	}

	// Collaborators
	llmClient := openai.NewClient(openai.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		Timeout:        cfg.LLM.Timeout,
		RepairSections: true,
	}, slogger)
	stages := orchestrator.Stages{
		Text: ocr.NewExtractor(ocr.Config{
			Pdftotext:     cfg.OCR.Pdftotext,
			Tesseract:     cfg.OCR.Tesseract,
			TesseractLang: cfg.OCR.TesseractLang,
			PSM:           cfg.OCR.PSM,
		}, slogger),
		Structured: llmClient,
		Reconciler: llmClient,
		Report:     export.NewBuilder(cfg.Export.ArtifactDir, slogger),
	}

	// Engine
	store := task.NewStore()
	sink := logsink.NewMemorySink()
	engine := orchestrator.New(store, sink, stages, cfg.Stages, arch, slogger)

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryRequestInterceptor(slogger)))
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewTasksService(engine, slogger)
	tasksv1.RegisterTasksServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	engine.Shutdown(drainCtx)
	fmt.Println("stopped.")
}
