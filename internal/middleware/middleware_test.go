package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

const permRead = "item:read"

func newTestMiddleware(t *testing.T, rateLimit int) (Middleware, scope.Manager, *Metrics) {
	t.Helper()
	mgr := scope.New("secret", "inventory-test", time.Hour)
	metrics := NewMetrics(prometheus.NewRegistry())
	mw := New(log.NewNop(), mgr, Config{
		Roles:           map[string][]string{"admin": {permRead}, "user": {}},
		RateLimitPerMin: rateLimit,
	}, metrics)
	return mw, mgr, metrics
}

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Metrics(), mw.RateLimit())
	r.GET("/items", mw.Auth(), mw.Permission(permRead), func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAndPermission(t *testing.T) {
	mw, mgr, _ := newTestMiddleware(t, 0)
	r := newEngine(mw)

	adminToken, err := mgr.CreateToken(scope.Scope{UserID: "u-admin", Role: "admin"})
	require.NoError(t, err)
	userToken, err := mgr.CreateToken(scope.Scope{UserID: "u-user", Role: "user"})
	require.NoError(t, err)

	w := get(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-admin", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = get(r, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden Access"}`, w.Body.String())

	w = get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access"}`, w.Body.String())

	w = get(r, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	mw, _, _ := newTestMiddleware(t, 0)
	r := newEngine(mw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	mw, _, _ := newTestMiddleware(t, 10) // burst of 1
	r := newEngine(mw)

	first := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, first.Code)

	second := get(r, "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"message":"Too Many Requests"}`, second.Body.String())
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(60) // burst of 6, one token per second

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 6, allowed.Load())
	assert.Equal(t, 1, rl.limiters.Len())
}

func TestMetrics(t *testing.T) {
	mw, _, metrics := newTestMiddleware(t, 0)
	r := newEngine(mw)

	get(r, "")
	get(r, "")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/items", "401")))
}

func TestHasPermission(t *testing.T) {
	mw, _, _ := newTestMiddleware(t, 0)

	assert.True(t, mw.HasPermission("admin", permRead))
	assert.False(t, mw.HasPermission("user", permRead))
	assert.False(t, mw.HasPermission("ghost", permRead))
}
