package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// SendJSON posts a JSON body and returns the raw response bytes. Provider
// agnostic: the caller picks the URL and auth headers. reqID is the caller's
// per-stage request id, so the HTTP log lines correlate with the stage-level
// ones instead of minting a second id.
func SendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, reqID string, logger *slog.Logger) ([]byte, int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}

	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		logger.Error("llm.request.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		logger.Error("llm.request.build_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.Info("llm.request.send", "req_id", reqID, "url", url, "bytes", len(bs))

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("llm.request.send_error",
			"req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("llm.request.body_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	logger.Info("llm.request.done",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("llm api returned status %d: %s", resp.StatusCode, snippet(raw, 256))
	}
	return raw, resp.StatusCode, nil
}

// snippet keeps error messages readable when the provider returns a long
// HTML or JSON error page.
func snippet(b []byte, max int) string {
	s := string(bytes.TrimSpace(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
