package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/apikey"
	"restaurant-booking/internal/pkg/jwt"
)

//go:generate mockgen -source=auth.go -destination=../testutil/mock/usecase/mock_auth.go -package=usecasemock

var (
	ErrInvalidCredentials = errors.New("invalid api key")
	ErrAdminDisabled      = errors.New("admin access is not configured")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthUseCase guards the back office: either the shared API key on every call
// or a session token obtained by presenting that key once.
type AuthUseCase interface {
	Login(ctx context.Context, key string) (*Session, error)
	ValidateAPIKey(key string) error
	ValidateToken(token string) error
	SessionDuration() time.Duration
}

type authUseCaseImpl struct {
	verifier   *apikey.Verifier
	jwtService *jwt.Service
}

func NewAuthUseCase(verifier *apikey.Verifier, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, key string) (*Session, error) {
	if err := a.ValidateAPIKey(key); err != nil {
		slog.WarnContext(ctx, "admin login rejected", "error", err)
		return nil, err
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *authUseCaseImpl) ValidateAPIKey(key string) error {
	err := a.verifier.Verify(key)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apikey.ErrNotConfigured):
		return ErrAdminDisabled
	default:
		return ErrInvalidCredentials
	}
}

func (a *authUseCaseImpl) ValidateToken(token string) error {
	if _, err := a.jwtService.ValidateToken(token); err != nil {
		return ErrTokenValidation
	}
	return nil
}

func (a *authUseCaseImpl) SessionDuration() time.Duration {
	return a.jwtService.TokenDuration()
}
