package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestRateLimiterRejectsBursts(t *testing.T) {
	limiter := newIPRateLimiter(rate.Limit(1), 2)
	handler := limiter.middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	status := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := status("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("first request = %d", got)
	}
	if got := status("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("second request = %d", got)
	}
	if got := status("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Errorf("burst overflow = %d, want 429", got)
	}

	// A different client has its own bucket.
	if got := status("10.0.0.2:1234"); got != http.StatusOK {
		t.Errorf("other client = %d", got)
	}
}
