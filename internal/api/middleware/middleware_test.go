package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	path   string
	method string
	status int
}

type fakeHTTPMetrics struct{ calls []observed }

func (m *fakeHTTPMetrics) ObserveHTTP(path, method string, status int, _ time.Duration) {
	m.calls = append(m.calls, observed{path: path, method: method, status: status})
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/hooks/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hooks/telegram", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{path: "/hooks/{name}", method: http.MethodPost, status: http.StatusAccepted}, m.calls[0])
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, time.Minute)
	h := limiter.Middleware(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Другой адрес считается отдельно, адрес без порта тоже допустим
	req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
	req.RemoteAddr = "10.0.0.2"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func limitedChain(trusted []*net.IPNet) http.Handler {
	limiter := NewRateLimiter(0.001, 1, time.Minute)
	return TrustedProxyHeaders(trusted)(limiter.Middleware(http.HandlerFunc(okHandler)))
}

func forwarded(h http.Handler, remoteAddr, xff string) int {
	req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", xff)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestTrustedProxyHeaders_UntrustedClientCannotRotateAddress(t *testing.T) {
	_, proxies, err := net.ParseCIDR("10.0.0.0/8")
	require.NoError(t, err)

	for _, trusted := range [][]*net.IPNet{nil, {proxies}} {
		h := limitedChain(trusted)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			codes = append(codes, forwarded(h, "203.0.113.7:4000", fmt.Sprintf("198.51.100.%d", i+1)))
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	}
}

func TestTrustedProxyHeaders_TrustedProxyForwardsClientAddress(t *testing.T) {
	_, proxies, err := net.ParseCIDR("10.0.0.0/8")
	require.NoError(t, err)

	h := limitedChain([]*net.IPNet{proxies})

	// Разные клиенты за одним прокси лимитируются отдельно
	assert.Equal(t, http.StatusOK, forwarded(h, "10.1.2.3:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, forwarded(h, "10.1.2.3:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, forwarded(h, "10.1.2.3:4000", "198.51.100.1"))
}

func TestRateLimiter_Evict(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute)
	limiter.limiter("10.0.0.1")

	limiter.evict(time.Now().Add(30 * time.Second))
	assert.Len(t, limiter.visitors, 1)

	limiter.evict(time.Now().Add(2 * time.Minute))
	assert.Empty(t, limiter.visitors)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
}

func TestWebhookSecret(t *testing.T) {
	h := WebhookSecret("s3cr3t", nopLogger{})(http.HandlerFunc(okHandler))

	tests := []struct {
		name   string
		method string
		secret string
		want   int
	}{
		{name: "valid secret", method: http.MethodPost, secret: "s3cr3t", want: http.StatusOK},
		{name: "wrong secret", method: http.MethodPost, secret: "nope", want: http.StatusUnauthorized},
		{name: "missing secret", method: http.MethodPost, want: http.StatusUnauthorized},
		{name: "liveness is open", method: http.MethodGet, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/webhook", nil)
			if tt.secret != "" {
				req.Header.Set(HeaderTelegramSecret, tt.secret)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWebhookSecret_EmptyDisablesCheck(t *testing.T) {
	h := WebhookSecret("", nopLogger{})(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
