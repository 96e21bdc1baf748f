package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	raw, code, err := SendJSON(context.Background(), srv.Client(), srv.URL,
		map[string]any{"model": "gpt-4o-mini"},
		map[string]string{"Authorization": "Bearer sk-test"},
		"req-1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestSendJSONNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer srv.Close()

	raw, code, err := SendJSON(context.Background(), srv.Client(), srv.URL, map[string]any{}, nil, "req-2", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limited")
	assert.NotEmpty(t, raw)
}

func TestSendJSONHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := SendJSON(ctx, srv.Client(), srv.URL, map[string]any{}, nil, "req-3", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
