package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/incident_reporting/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func pingFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	clock := clockwork.NewFakeClockAt(fixedNow)
	metrics := observability.NewMetricsForTesting()
	router := newLimitedRouter(NewRateLimiter(1, 2, clock, metrics))

	assert.Equal(t, http.StatusNoContent, pingFrom(router, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, pingFrom(router, "10.0.0.1:1000").Code)

	w := pingFrom(router, "10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, CodeRateLimited, decodeProblem(t, w).Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RateLimited))

	// Другой клиент имеет собственный лимит
	assert.Equal(t, http.StatusNoContent, pingFrom(router, "10.0.0.2:1000").Code)

	// Через секунду появляется новый токен
	clock.Advance(time.Second)
	assert.Equal(t, http.StatusNoContent, pingFrom(router, "10.0.0.1:1000").Code)
}

func TestRateLimiter_DisabledWhenRPSNotPositive(t *testing.T) {
	router := newLimitedRouter(NewRateLimiter(0, 0, clockwork.NewFakeClockAt(fixedNow), nil))

	for range 10 {
		assert.Equal(t, http.StatusNoContent, pingFrom(router, "10.0.0.1:1000").Code)
	}
}

func TestRateLimiter_RetryAfterForSlowRate(t *testing.T) {
	rl := NewRateLimiter(0.2, 1, clockwork.NewFakeClockAt(fixedNow), nil)
	assert.Equal(t, 5, rl.retryAfterSeconds())
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	clock := clockwork.NewFakeClockAt(fixedNow)
	rl := NewRateLimiter(1, 1, clock, nil)
	rl.getVisitor("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Cleanup(ctx)
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(visitorIdleTTL + visitorCleanupInterval)

	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.visitors) == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware(metrics))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "/items/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestCORS_ExposesContentDisposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}
