package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("auth0|a"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("auth0|a"), "burst exhausted")
}

func TestRateLimiter_DifferentUsers(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	assert.True(t, rl.Allow("auth0|a"))
	assert.False(t, rl.Allow("auth0|a"))
	assert.True(t, rl.Allow("auth0|b"))
	assert.Equal(t, 2, rl.Len())
}

func TestRateLimiter_EvictStale(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	rl.Allow("auth0|a")
	rl.evictStale(time.Now().Add(LimiterTTL + time.Second))

	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	rl.Stop()
}

func withSubject(c echo.Context, auth0ID string) {
	ctx := context.WithValue(c.Request().Context(), Auth0IDKey, auth0ID)
	c.SetRequest(c.Request().WithContext(ctx))
}

func TestRateLimitMiddleware_SkipsAnonymous(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()
	e := echo.New()
	handler := RateLimitMiddleware(rl)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/reports", nil), rec)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimitMiddleware_LimitsUser(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 2)
	defer rl.Stop()
	e := echo.New()
	handler := RateLimitMiddleware(rl)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/reports", nil), rec)
		withSubject(c, "auth0|busy")
		assert.NoError(t, handler(c))
		codes = append(codes, rec.Code)
		last = rec
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "60", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), errorTypeRateLimit)
}
