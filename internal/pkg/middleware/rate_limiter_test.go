package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiterTest(t *testing.T, limit int, period time.Duration) (*echo.Echo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit",
		Limit:       limit,
		Period:      period,
	}))

	return e, mr
}

func doRequest(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	e, _ := setupRateLimiterTest(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doRequest(e)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_OverLimit(t *testing.T) {
	e, _ := setupRateLimiterTest(t, 2, time.Minute)

	doRequest(e)
	doRequest(e)

	rec := doRequest(e)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	e, mr := setupRateLimiterTest(t, 1, time.Second)

	assert.Equal(t, http.StatusOK, doRequest(e).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e).Code)

	mr.FastForward(2 * time.Second)

	assert.Equal(t, http.StatusOK, doRequest(e).Code)
}
