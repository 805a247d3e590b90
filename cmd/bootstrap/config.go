package bootstrap

import (
	"time"

	"restaurant-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the restaurant's zone; "today", cron specs and e-mail dates are read in it.
func NewLocation(cfg config.Config) *time.Location {
	return cfg.Restaurant.Location()
}
