package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/cookie"
	"restaurant-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	APIKeyHeader = "X-API-Key"

	ctxAdminAuthKey = "admin_auth"

	AuthMethodAPIKey  = "api_key"
	AuthMethodSession = "session"
)

type AdminAuth struct {
	auth usecase.AuthUseCase
}

func NewAdminAuth(auth usecase.AuthUseCase) *AdminAuth {
	return &AdminAuth{auth: auth}
}

// RequireAdmin accepts the API key header, a bearer session token, or the session cookie.
func (m *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(APIKeyHeader); key != "" {
			if err := m.auth.ValidateAPIKey(key); err != nil {
				m.reject(c, err)
				return
			}
			c.Set(ctxAdminAuthKey, AuthMethodAPIKey)
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			token = cookie.GetSessionToken(c)
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrInvalidCredentials, "Non autorisé", nil)
			return
		}

		if err := m.auth.ValidateToken(token); err != nil {
			m.reject(c, err)
			return
		}
		c.Set(ctxAdminAuthKey, AuthMethodSession)
		c.Next()
	}
}

func (m *AdminAuth) reject(c *gin.Context, err error) {
	slog.Warn("admin authentication failed", "error", err.Error(), "client_ip", c.ClientIP())
	if errors.Is(err, usecase.ErrAdminDisabled) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Administration désactivée", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusUnauthorized, err, "Non autorisé", nil)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAuthMethod(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminAuthKey)
	if !exists {
		return "", false
	}
	method, ok := v.(string)
	return method, ok
}
