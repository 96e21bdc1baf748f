package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/pdf-reconciler/constants"
	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	PSM           int    // e.g., 6 is good for uniform block of text
}

// Extractor implements stage.TextExtractor by shelling out to pdftotext for
// PDFs and tesseract for images. The source_ref is a local file path.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// ExtractText picks a strategy based on file extension.
func (e *Extractor) ExtractText(ctx context.Context, sourceRef string) (stage.TextResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(sourceRef))
	e.logger.Debug("ocr.extract.start",
		"task_id", common.TaskIDFromContext(ctx), "source_ref", sourceRef, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, sourceRef)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, sourceRef)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("ocr.extract.unsupported_extension", "extension", ext)
		return stage.TextResult{}, stage.Errorf(constants.StageOCR, "unsupported extension: %q", ext)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (stage.TextResult, error) {
	// "-" sends the extracted text to stdout.
	out, stderr, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", path, "-")
	if err != nil {
		if ctx.Err() != nil {
			return stage.TextResult{}, fmt.Errorf("pdftotext: %w", ctx.Err())
		}
		return stage.TextResult{}, stage.Errorf(constants.StageOCR,
			"pdftotext failed: %v: %s", err, truncate(string(stderr), 512))
	}
	text := string(out)
	res := stage.TextResult{
		Text:   text,
		Pages:  strings.Count(text, "\f") + 1,
		Method: "pdf-text",
	}
	if strings.TrimSpace(text) == "" {
		res.Warnings = append(res.Warnings, "pdftotext produced no text; document may be a scan")
	}
	e.logger.Info("ocr.extract.ok", "method", res.Method, "pages", res.Pages, "chars", len(text))
	return res, nil
}

func (e *Extractor) extractImage(ctx context.Context, path string) (stage.TextResult, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprint(e.cfg.PSM))
	}
	out, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		if ctx.Err() != nil {
			return stage.TextResult{}, fmt.Errorf("tesseract: %w", ctx.Err())
		}
		return stage.TextResult{}, stage.Errorf(constants.StageOCR,
			"tesseract failed: %v: %s", err, truncate(string(stderr), 512))
	}
	res := stage.TextResult{
		Text:   string(out),
		Pages:  1,
		Method: "image-ocr",
	}
	e.logger.Info("ocr.extract.ok", "method", res.Method, "chars", len(res.Text))
	return res, nil
}
