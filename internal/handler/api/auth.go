package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/cookie"
	"restaurant-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   usecase.AuthUseCase
	cookie config.CookieConfig
}

func NewAuthHandler(auth usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		cookie: cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Exchange the admin API key for a session token (also set as an http-only cookie)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest false "API key, unless sent as X-API-Key"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}
	key := req.APIKey
	if key == "" {
		key = c.GetHeader(middleware.APIKeyHeader)
	}

	session, err := h.auth.Login(c.Request.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAdminDisabled):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Administration désactivée", nil)
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Clé API invalide", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MessageInternalError, nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookie, session.Token, h.auth.SessionDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookie)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Déconnecté"})
}

// @Summary Verify admin credentials
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Clé API valide"})
}
