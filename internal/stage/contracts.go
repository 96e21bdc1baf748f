package stage

import (
	"context"
	"time"
)

// Document is the structured value extracted from a source document:
// field name -> value, nesting allowed. The reconciler returns the same shape.
type Document map[string]any

// TextExtractor is the raw-text branch: document reference -> plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, sourceRef string) (TextResult, error)
}

type TextResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "image-ocr"
	Duration time.Duration
	Warnings []string
}

// StructuredExtractor is the AI branch: document reference + directive -> Document.
type StructuredExtractor interface {
	ExtractDocument(ctx context.Context, sourceRef, directive string) (Document, error)
}

// Reconciler merges the structured extraction with the raw text and returns
// a document of the same shape.
type Reconciler interface {
	Reconcile(ctx context.Context, extracted Document, rawText string) (Document, error)
}

// ReportBuilder renders a reconciled document into an artifact and returns
// an opaque reference the caller resolves against storage.
type ReportBuilder interface {
	BuildReport(ctx context.Context, taskID string, doc Document) (string, error)
}
