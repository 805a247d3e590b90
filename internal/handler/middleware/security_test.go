//go:build unit

package middleware_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	router := httptest.NewTestEngine()
	router.Use(middleware.SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil)

	httptest.AssertHeaders(t, rec, map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"Referrer-Policy":        "no-referrer",
	})
}

func TestBodyLimit(t *testing.T) {
	router := httptest.NewTestEngine()
	router.Use(middleware.BodyLimit(16))
	router.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			var tooLarge *http.MaxBytesError
			assert.ErrorAs(t, err, &tooLarge)
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.PerformRawRequest(t, router, http.MethodPost, "/", []byte(`{"a":1}`))
	large := httptest.PerformRawRequest(t, router, http.MethodPost, "/", []byte(strings.Repeat("x", 64)))

	assert.Equal(t, http.StatusOK, small.Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}
