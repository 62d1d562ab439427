package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_RejectsAfterBurst(t *testing.T) {
	h := RateLimit(okHandler, 1, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(h, httptest.NewRequest(http.MethodGet, "/notes", nil)).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestAuth(t *testing.T) {
	h := Auth(okHandler, "secret", "/healthz")

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "valid token", path: "/notes", header: "Bearer secret", want: http.StatusOK},
		{name: "missing header", path: "/notes", want: http.StatusUnauthorized},
		{name: "wrong scheme", path: "/notes", header: "Basic secret", want: http.StatusUnauthorized},
		{name: "wrong token", path: "/notes", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "public path", path: "/healthz", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, serve(h, req).Code)
		})
	}
}

func TestAuth_EmptyTokenDisablesCheck(t *testing.T) {
	h := Auth(okHandler, "")

	assert.Equal(t, http.StatusOK, serve(h, httptest.NewRequest(http.MethodGet, "/notes", nil)).Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	rec = serve(h, req)
	assert.Equal(t, "given-id", seen)
	assert.Equal(t, "given-id", rec.Header().Get(RequestIDHeader))
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	assert.Equal(t, http.StatusTeapot, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
