package handler

import (
	"net/http"
	"time"

	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/binding"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Dashboard    *api.DashboardHandler
	Settings     *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, adminAuth *middleware.AdminAuth) error {
	if err := binding.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, adminAuth)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, adminAuth *middleware.AdminAuth) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	var bookingLimit []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		global := middleware.NewRateLimiter(cfg.RateLimit.GlobalRequests, cfg.RateLimit.GlobalWindow, middleware.MessageTooManyRequests)
		apiGroup.Use(global.Middleware())
		booking := middleware.NewRateLimiter(cfg.RateLimit.BookingRequests, cfg.RateLimit.BookingWindow, middleware.MessageTooManyBookings)
		bookingLimit = []gin.HandlerFunc{booking.Middleware()}
	}
	{
		apiGroup.GET("/health", healthCheck)

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: bookingLimit},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Status},
		})

		availability := apiGroup.Group("/availability")
		addRoutes(availability, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.Day},
			{Method: http.MethodGet, Path: "/config", Handler: h.Availability.Config},
			{Method: http.MethodGet, Path: "/slot", Handler: h.Availability.Slot},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(adminAuth.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/verify", Handler: h.Auth.Verify},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/reservations/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPut, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
				{Method: http.MethodGet, Path: "/dashboard/:date", Handler: h.Dashboard.Dashboard},
				{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.Get},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Settings.Update},
			})
		}
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Endpoint non trouvé"}})
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
