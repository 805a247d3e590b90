package components

import (
	"restaurant-booking/internal/handler"
	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewDashboardHandler,
		api.NewSettingsHandler,
		middleware.NewAdminAuth,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Dashboard    *api.DashboardHandler
	Settings     *api.SettingsHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Reservation:  p.Reservation,
		Availability: p.Availability,
		Dashboard:    p.Dashboard,
		Settings:     p.Settings,
	}
}
