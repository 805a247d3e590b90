package bootstrap

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"restaurant-booking/internal/pkg/apikey"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewAPIKeyVerifier,
	),
)

// NewJWTService signs admin sessions. Without ADMIN_JWT_SECRET a random secret is
// used, so sessions end with the process.
func NewJWTService(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*jwt.Service, error) {
	secret := cfg.Admin.JWTSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		secret = hex.EncodeToString(buf)
		if cfg.Admin.Enabled() {
			logger.Warn("ADMIN_JWT_SECRET not set, admin sessions will not survive a restart")
		}
	}
	return jwt.NewService(secret, cfg.Admin.SessionDuration, clk), nil
}

func NewAPIKeyVerifier(cfg config.Config, logger *slog.Logger) *apikey.Verifier {
	if !cfg.Admin.Enabled() {
		logger.Warn("ADMIN_API_KEY not set, admin routes are disabled")
	}
	return apikey.NewVerifier(cfg.Admin.APIKey, cfg.Admin.APIKeyHash)
}
