package httpkit

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) { c.Status(http.StatusOK) }

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	w := get(r, "/", nil)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("missing generated request ID")
	}

	w = get(r, "/", map[string]string{RequestIDHeader: "abc-123"})
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("request ID = %q, want client-supplied value", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", okHandler)

	w := get(r, "/", nil)
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS must be absent without TLS, got %q", got)
	}
}

func TestRateLimitBurstThenReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(rate.Limit(1), 2, nil)
	r := gin.New()
	r.Use(limiter.RateLimit())
	r.GET("/", okHandler)

	for i := 0; i < 2; i++ {
		if w := get(r, "/", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
	if w := get(r, "/", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 after burst exhausted", w.Code)
	}
}

func TestRateLimitConcurrentFirstRequestsShareBucket(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 5, nil)

	const workers = 16
	buckets := make([]*rate.Limiter, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			buckets[i] = limiter.getLimiter("10.0.0.1")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if buckets[i] != buckets[0] {
			t.Fatal("concurrent first requests created more than one bucket")
		}
	}
}

type apiKeyStub struct {
	enabled bool
	keys    []string
}

func (s apiKeyStub) IsAPIKeyEnabled() bool { return s.enabled }
func (s apiKeyStub) GetAPIKeys() []string  { return s.keys }

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(apiKeyStub{enabled: true, keys: []string{"secret"}}, "/health"))
	r.GET("/data", okHandler)
	r.GET("/health", okHandler)

	if w := get(r, "/data", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing key status = %d, want 401", w.Code)
	}
	if w := get(r, "/data", map[string]string{"X-API-Key": "wrong"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key status = %d, want 401", w.Code)
	}
	if w := get(r, "/data", map[string]string{"X-API-Key": "secret"}); w.Code != http.StatusOK {
		t.Fatalf("valid key status = %d, want 200", w.Code)
	}
	if w := get(r, "/health", nil); w.Code != http.StatusOK {
		t.Fatalf("exempt path status = %d, want 200", w.Code)
	}
}

func TestAPIKeyAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(apiKeyStub{enabled: false}))
	r.GET("/data", okHandler)

	if w := get(r, "/data", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 when auth disabled", w.Code)
	}
}
