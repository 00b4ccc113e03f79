package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hundredgaj/internal/logger"
)

func newTestRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMetricsMiddleware(t *testing.T) {
	router := newTestRouter(MetricsMiddleware())

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/missing").Code)
}

func TestRequestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := logger.Get()
	logger.Set(logger.New(core))
	defer logger.Set(previous)

	router := newTestRouter(RequestIDMiddleware(), RequestLoggingMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/test?page=2", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/test?page=2", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "req-123", fields["request_id"])
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newTestRouter(RequestIDMiddleware())

	w := serve(router, http.MethodGet, "/test")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(1, 2, time.Minute)
	defer limiter.Stop()
	router := newTestRouter(limiter.Middleware())

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test").Code)

	w := serve(router, http.MethodGet, "/test")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimiter_Evict(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")
	limiter.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Minute)

	limiter.evict(time.Now())

	assert.NotContains(t, limiter.visitors, "10.0.0.1")
	assert.Contains(t, limiter.visitors, "10.0.0.2")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestCorsMiddleware(t *testing.T) {
	router := newTestRouter(corsMiddleware())

	w := serve(router, http.MethodGet, "/test")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCorsMiddleware_OPTIONS(t *testing.T) {
	router := newTestRouter(corsMiddleware())

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodOptions, "/test").Code)
}
