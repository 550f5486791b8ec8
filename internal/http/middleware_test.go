package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	rl "github.com/fleetflow/analytics-api/internal/http/rate_limiter"
)

func TestRateLimitMiddleware(t *testing.T) {
	rl.SetLimits(1, 1)
	rl.CleanupAllVisitors()
	t.Cleanup(func() {
		rl.SetLimits(5, 10)
		rl.CleanupAllVisitors()
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RateLimitMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	req.RemoteAddr = "198.51.100.7:4711"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second burst request should be throttled, got %d", w.Code)
	}
}

func TestRateLimitMiddlewareExemptsHealth(t *testing.T) {
	rl.SetLimits(1, 1)
	rl.CleanupAllVisitors()
	t.Cleanup(func() {
		rl.SetLimits(5, 10)
		rl.CleanupAllVisitors()
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RateLimitMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.8:4711"

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("health must never be throttled, got %d", w.Code)
		}
	}
}
