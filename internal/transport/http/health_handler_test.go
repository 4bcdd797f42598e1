package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfocli/internal/config"
	"cfocli/internal/services"
)

func newTestHealthHandler(t *testing.T) *HealthHandler {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := services.NewDatasetServiceWithLogger(cfg, logger)
	svc := services.NewHealthServiceWithBuildInfo("v1.2.0", "2026-08-30", "abc123", cfg.Paths, data, logger)
	return NewHealthHandler(svc, logger)
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	h := newTestHealthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHealthHandler_Version(t *testing.T) {
	h := newTestHealthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.Version(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "v1.2.0", body["version"])
	assert.Equal(t, "abc123", body["build_id"])
}

func TestHealthHandler_DetailedHealth(t *testing.T) {
	h := newTestHealthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health/detailed", nil)
	rec := httptest.NewRecorder()
	h.DetailedHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{"health", "readiness", "liveness", "stats"} {
		assert.Contains(t, body, key)
	}
}

func TestHealthHandler_LivenessCheck(t *testing.T) {
	h := newTestHealthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health/live", nil)
	rec := httptest.NewRecorder()
	h.LivenessCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
