package api

import (
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	settings     queries.SettingsQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, settings queries.SettingsQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		settings:     settings,
	}
}

// @Summary Public configuration
// @Description Closed days, Sunday dinner rule, time slots and opening hours for the booking widget
// @Tags availability
// @Produce json
// @Success 200 {object} restaurant.PublicConfig
// @Router /api/availability/config [get]
func (h *AvailabilityHandler) Config(c *gin.Context) {
	cfg, err := h.settings.Public(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Day availability
// @Tags availability
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	var q reqdto.DayAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date, ok := parseDate(c, q.Date)
	if !ok {
		return
	}

	day, err := h.availability.Day(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDay(day))
}

// @Summary Slot availability
// @Description Whether a party fits at a given date and time, with the table it would get or alternative times
// @Tags availability
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:MM"
// @Param guests query int true "1-8"
// @Success 200 {object} availability.Result
// @Failure 400 {object} httperr.Response
// @Router /api/availability/slot [get]
func (h *AvailabilityHandler) Slot(c *gin.Context) {
	var q reqdto.SlotAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	date, ok := parseDate(c, q.Date)
	if !ok {
		return
	}

	result, err := h.availability.Check(c.Request.Context(), date, q.Time, q.Guests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
