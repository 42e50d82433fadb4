package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/config"
)

// Both Redis middlewares must be transparent when Redis is unavailable:
// a nil client means pass-through, never an error.

func serveThrough(mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRedisCacheNilClientPassesThrough(t *testing.T) {
	cfg := config.CacheConfig{
		Enabled: true,
		Methods: map[string]bool{"GET": true},
		TTL:     time.Minute,
		Prefix:  "cache",
	}
	rec := serveThrough(NewRedisCache(cfg, nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("got %d %q, want 200 pong", rec.Code, rec.Body)
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Errorf("pass-through should not set X-Cache, got %q", rec.Header().Get("X-Cache"))
	}
}

func TestRedisCacheDisabledPassesThrough(t *testing.T) {
	rec := serveThrough(NewRedisCache(config.CacheConfig{Enabled: false}, nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("got %d %q, want 200 pong", rec.Code, rec.Body)
	}
}

func TestRateLimiterNilClientPassesThrough(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled: true,
		Limit:   1,
		Window:  time.Minute,
		Prefix:  "rl",
	}
	// Limit 1 would block a second request if the limiter were active.
	mw := NewRateLimiter(cfg, nil)
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, mw)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i, rec.Code)
		}
	}
}
