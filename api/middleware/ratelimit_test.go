package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Errorf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		limiter.Allow("1.2.3.4")
	}

	if limiter.Allow("1.2.3.4") {
		t.Error("request over the limit should be blocked")
	}
}

func TestRateLimiter_TracksKeysIndependently(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	if !limiter.Allow("1.2.3.4") {
		t.Error("first key's request should be allowed")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Error("second key's request should be allowed")
	}
	if limiter.Allow("1.2.3.4") {
		t.Error("first key's second request should be blocked")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Error("429 response should carry a Retry-After header")
	}
}

func TestExtractIP_XForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

	ip := extractIP(req)

	if ip != "10.0.0.2" {
		t.Errorf("extractIP = %q, want the last hop 10.0.0.2", ip)
	}
}

func TestExtractIP_XRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.3")

	ip := extractIP(req)

	if ip != "10.0.0.3" {
		t.Errorf("extractIP = %q, want 10.0.0.3", ip)
	}
}

func TestExtractIP_RemoteAddrFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.4:9999"

	ip := extractIP(req)

	if ip != "10.0.0.4:9999" {
		t.Errorf("extractIP = %q, want the remote address", ip)
	}
}
