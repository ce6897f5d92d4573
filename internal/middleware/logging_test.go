package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"card_keep/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLogger(context.Background()), "未設定ならデフォルトロガー")

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := middleware.WithLogger(context.Background(), l)
	assert.Same(t, l, middleware.GetLogger(ctx))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var inner *slog.Logger
	h := middleware.LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = middleware.GetLogger(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/counts", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotNil(t, inner)
	assert.Contains(t, buf.String(), "/api/v1/counts")
}

func TestLoggingMiddleware_MasksSensitiveHeaders(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := middleware.LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cards/x/review", bytes.NewBufferString(`{"rating":2}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "[SENSITIVE]")
	assert.Contains(t, out, `{\"rating\":2}`, "デバッグ時はリクエストボディも出力する")
}
