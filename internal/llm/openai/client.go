package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-reconciler/internal/common"
	"github.com/joseph-ayodele/pdf-reconciler/internal/llm"
	"github.com/joseph-ayodele/pdf-reconciler/internal/stage"
)

// ExtractDocument implements stage.StructuredExtractor. The document itself
// is attached to the request (base64 file part), so this branch never
// depends on the OCR branch's output.
func (c *Client) ExtractDocument(ctx context.Context, sourceRef, directive string) (stage.Document, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"task_id", common.TaskIDFromContext(ctx),
		"model", c.cfg.Model,
		"source_ref", sourceRef,
		"has_directive", directive != "",
	)

	data, err := os.ReadFile(sourceRef)
	if err != nil {
		c.logger.Error("llm.extract.read_error", "req_id", rid, "error", err)
		return nil, fmt.Errorf("read source document: %w", err)
	}

	schema := llm.BuildDocumentJSONSchema()
	filePart := map[string]any{
		"type": "file",
		"file": map[string]any{
			"filename":  filepath.Base(sourceRef),
			"file_data": dataURL(sourceRef, data),
		},
	}
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildExtractionSystemPrompt(directive)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "content": []any{
				map[string]any{"type": "text", "text": "Extract the structured contents of this document."},
				filePart,
			}},
		},
	}

	doc, err := c.complete(ctx, rid, body)
	if err != nil {
		return nil, err
	}
	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(doc),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}

// Reconcile implements stage.Reconciler: cross-check the structured
// extraction against the independently produced OCR text.
func (c *Client) Reconcile(ctx context.Context, extracted stage.Document, rawText string) (stage.Document, error) {
	rid := uuid.New().String()
	start := time.Now()

	extractedJSON := mustJSON(extracted)
	c.logger.Info("llm.reconcile.start",
		"req_id", rid,
		"task_id", common.TaskIDFromContext(ctx),
		"model", c.cfg.Model,
		"extracted_bytes", len(extractedJSON),
		"text_len", len(rawText),
	)

	schema := llm.BuildDocumentJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildReconciliationSystemPrompt()},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "content": llm.BuildReconciliationUserPrompt(extractedJSON, rawText)},
		},
	}

	doc, err := c.complete(ctx, rid, body)
	if err != nil {
		return nil, err
	}
	c.logger.Info("llm.reconcile.ok",
		"req_id", rid,
		"fields", len(doc),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}

// complete posts a chat request, pulls out the first choice, and validates
// the content against the document schema (with an optional shape repair
// pass) before decoding it.
func (c *Client) complete(ctx context.Context, rid string, body map[string]any) (stage.Document, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, rid, c.logger)
	if err != nil {
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.no_choices", "req_id", rid)
		return nil, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := llm.ValidateDocumentJSON(content); err != nil {
		if !c.cfg.RepairSections {
			return nil, fmt.Errorf("model output failed schema validation: %w", err)
		}
		repaired, filled, rErr := llm.RepairDocumentShape(content)
		if rErr != nil {
			return nil, fmt.Errorf("model output failed schema validation: %w", err)
		}
		if vErr := llm.ValidateDocumentJSON(repaired); vErr != nil {
			return nil, fmt.Errorf("model output failed schema validation: %w", vErr)
		}
		c.logger.Warn("llm.shape_repair_applied", "req_id", rid, "filled", filled)
		content = repaired
	}

	var doc stage.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode document json: %w", err)
	}
	return doc, nil
}

func dataURL(path string, data []byte) string {
	mime := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		mime = "application/pdf"
	case ".png":
		mime = "image/png"
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".tif", ".tiff":
		mime = "image/tiff"
	case ".webp":
		mime = "image/webp"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
