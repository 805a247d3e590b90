//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOption func(*http.Request)

func WithBearer(token string) RequestOption {
	return func(r *http.Request) {
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func WithAPIKey(key string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(middleware.APIKeyHeader, key)
	}
}

func WithCookies(cookies ...*http.Cookie) RequestOption {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func WithRemoteAddr(addr string) RequestOption {
	return func(r *http.Request) {
		r.RemoteAddr = addr
	}
}

func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// executes HTTP request with a JSON body when one is given
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sends a raw body, for malformed or oversized payloads
func PerformRawRequest(t *testing.T, router http.Handler, method, path string, raw []byte, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func NewTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
