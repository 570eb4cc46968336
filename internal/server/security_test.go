package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Homestead_Go/internal/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{name: "valid key", providedKey: apiKey, path: "/api/v1/games", expectedStatus: http.StatusOK},
		{name: "wrong key", providedKey: "wrong-key", path: "/api/v1/games", expectedStatus: http.StatusUnauthorized},
		{name: "missing key", path: "/api/v1/crops", expectedStatus: http.StatusUnauthorized},
		{name: "public healthz", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "public metrics", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "public version", path: "/version", expectedStatus: http.StatusOK},
		{name: "public swagger", path: "/swagger/index.html", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			h := AuthMiddleware(apiKey, nil, detector)(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	h := AuthMiddleware("secret-key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.7"])
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get("Referrer-Policy"))
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	h := SecurityLoggingMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < MaxRequestsPerIP; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limit is per client")
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, err := r.Body.Read(buf)
		for err == nil {
			_, err = r.Body.Read(buf)
		}
		var maxErr *http.MaxBytesError
		if assert.ErrorAs(t, err, &maxErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"query":"far too long"}`)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		expected  string
	}{
		{name: "direct", remote: "203.0.113.9:4000", expected: "203.0.113.9"},
		{name: "untrusted forwarded header ignored", remote: "203.0.113.9:4000", forwarded: "1.2.3.4", expected: "203.0.113.9"},
		{name: "trusted proxy uses last hop", remote: "10.0.0.1:4000", forwarded: "1.2.3.4, 198.51.100.2", trusted: []string{"10.0.0.1"}, expected: "198.51.100.2"},
		{name: "trusted proxy without header", remote: "10.0.0.1:4000", trusted: []string{"10.0.0.1"}, expected: "10.0.0.1"},
		{name: "unparseable remote", remote: "pipe", expected: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.NewConfig("debug", "text", "homestead", "test", "test", false), &buf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, LogMsgRequestCompleted)
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.NewConfig("debug", "text", "homestead", "test", "test", false), &buf)

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, _ = rw.Write([]byte("data: x\n\n"))
	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusOK, rw.statusCode)
}
