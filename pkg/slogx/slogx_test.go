package slogx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestNew_JSONWithServiceAttrs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := New(Config{Service: "trapit", Version: "v1", Env: "test", Level: "warn", Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "kept", lines[0]["msg"])
	require.Equal(t, "trapit", lines[0]["service"])
	require.Equal(t, "test", lines[0]["env"])
}

func TestTraceHandler_AddsSpanContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := New(Config{Service: "trapit", Output: &buf})

	traceID := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	spanID := trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8}
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	logger.InfoContext(ctx, "traced")
	logger.Info("untraced")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, traceID.String(), lines[0]["trace_id"])
	require.Equal(t, spanID.String(), lines[0]["span_id"])
	require.NotContains(t, lines[1], "trace_id")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), FromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	require.Equal(t, l, FromContext(WithContext(context.Background(), l)))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var sawLogger *slog.Logger
	h := HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = FromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))

		require.NotEqual(t, base, sawLogger)
		require.Len(t, rec.Header().Get("X-Request-ID"), 26)

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		require.Equal(t, "http_request", lines[0]["msg"])
		require.EqualValues(t, http.StatusCreated, lines[0]["status"])
		require.Equal(t, "/api/auth/register", lines[0]["path"])
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
		lines := decodeLines(t, &buf)
		require.Equal(t, "req-123", lines[0]["req_id"])
	})
}
