package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripwise/backend/internal/middleware"
)

func logOne(t *testing.T, status int, header http.Header) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("hello"))
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	// Simulate what chimiddleware.RequestID does: inject a known ID into context.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, status, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestSlogLogger_logsRequestFields verifies that one structured line carries
// method, path, status, size, duration, request ID and scope.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := logOne(t, http.StatusOK, nil)

	require.Equal(t, "INFO", entry["level"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/trips", entry["path"])
	require.EqualValues(t, http.StatusOK, entry["status"])
	require.EqualValues(t, 5, entry["bytes"])
	require.Equal(t, "test-req-id", entry["request_id"])
	require.Equal(t, "durable", entry["scope"])
	require.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	require.Equal(t, "WARN", logOne(t, http.StatusNotFound, nil)["level"])
	require.Equal(t, "ERROR", logOne(t, http.StatusInternalServerError, nil)["level"])
}

func TestSlogLogger_sessionScope(t *testing.T) {
	entry := logOne(t, http.StatusOK, http.Header{"X-Session-Id": {"abc"}})

	require.Equal(t, "session", entry["scope"])
}
