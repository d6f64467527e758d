package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log output should be valid JSON")
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]any, message string) map[string]any {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID(zerolog.Nop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID, "should generate request ID")
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c), "context ID should match header ID")
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	e := echo.New()
	existingID := "existing-request-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, existingID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID(zerolog.Nop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	assert.Equal(t, existingID, rec.Header().Get(RequestIDHeader), "should propagate existing request ID")
	assert.Equal(t, existingID, GetRequestID(c))
}

func TestRequestID_AttachesScopedLogger(t *testing.T) {
	var logBuf bytes.Buffer
	base := zerolog.New(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "scoped-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID(base)(func(c echo.Context) error {
		Logger(c, zerolog.Nop()).Info().Msg("inside handler")
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, "scoped-id", entry["request_id"])
}

func TestLogger_FallsBackWithoutRequestID(t *testing.T) {
	var logBuf bytes.Buffer
	fallback := zerolog.New(&logBuf)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	Logger(c, fallback).Info().Msg("fallback")

	assert.NotNil(t, findEntry(logEntries(t, &logBuf), "fallback"))
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c), "should return empty string when not set")
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf).With().Timestamp().Logger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations?keyword=lon", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/locations")
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/locations", entry["path"])
	assert.Equal(t, "/api/v1/locations", entry["route"])
	assert.Equal(t, "keyword=lon", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LogsClientIP(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "192.168.1.100")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "192.168.1.100", logEntries(t, &logBuf)[0]["client_ip"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "success", path: "/api/v1/airlines", status: http.StatusOK, wantLevel: "info"},
		{name: "health is quiet", path: "/health", status: http.StatusOK, wantLevel: "debug"},
		{name: "client error", path: "/api/v1/flights", status: http.StatusBadRequest, wantLevel: "warn"},
		{name: "server error", path: "/api/v1/flights", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			logger := zerolog.New(&logBuf)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())

			handler := RequestLogger(logger)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			require.NoError(t, handler(c))

			entry := logEntries(t, &logBuf)[0]
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(404), logEntries(t, &logBuf)[0]["status"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500OnPanic(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)

	handler := Recover(logger)(func(c echo.Context) error {
		panic("test panic")
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"An unexpected error occurred"}`, rec.Body.String())
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/bookings/order", nil), httptest.NewRecorder())
	c.Set("request_id", "stack-test-id")

	handler := Recover(logger)(func(c echo.Context) error {
		panic("stack trace test panic")
	})

	_ = handler(c)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/bookings/order", entry["path"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)

	handler := Recover(zerolog.Nop())(func(c echo.Context) error {
		var slice []int
		_ = slice[10]
		return nil
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/normal", nil), rec)

	handler := Recover(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String(), "should not log for normal requests")
}

// =====================================================
// Setup Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	Setup(e, logger)

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID, "RequestID middleware should set header")

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry, "RequestLogger middleware should log")
	assert.Equal(t, reqID, entry["request_id"])
}

func TestSetup_RecoversPanic(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	Setup(e, logger)

	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, float64(500), entry["status"])
}

func TestSetupWithConfig_DisablesStack(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	SetupWithConfig(e, logger, RecoveryConfig{DisablePrintStack: true})

	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry, "should have panic log entry")
	assert.NotContains(t, entry, "stack", "stack should be disabled via config")
}
