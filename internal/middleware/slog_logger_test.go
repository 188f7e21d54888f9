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

	"github.com/pkordes/rv-pager/internal/middleware"
)

// serveLogged runs h behind the SlogLogger for target and returns the decoded log line.
func serveLogged(t *testing.T, h http.Handler, target string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	middleware.NewSlogLogger(logger)(h).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestSlogLogger_logsRequestFields verifies the structured fields of a plain request.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := serveLogged(t, trivialHandler, "/trips?s=2")

	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/trips", entry["path"])
	require.Equal(t, "s=2", entry["query"])
	require.EqualValues(t, http.StatusOK, entry["status"])
	require.Equal(t, "test-req-id", entry["request_id"])
	require.NotNil(t, entry["duration_ms"])
	require.NotContains(t, entry, "location")
}

// TestSlogLogger_logsRedirectLocation verifies that a redirect's target is logged.
func TestSlogLogger_logsRedirectLocation(t *testing.T) {
	redirect := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/trips?s=3", http.StatusMovedPermanently)
	})

	entry := serveLogged(t, redirect, "/trips?s=-3")

	require.EqualValues(t, http.StatusMovedPermanently, entry["status"])
	require.Equal(t, "/trips?s=3", entry["location"])
}
