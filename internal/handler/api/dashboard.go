package api

import (
	"net/http"

	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	queries queries.DashboardQueries
}

func NewDashboardHandler(queries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{queries: queries}
}

// @Summary Reservation statistics
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} stats.Stats
// @Router /api/admin/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	s, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary Day dashboard
// @Description Lunch and dinner services of a day with guest totals and capacity usage
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} stats.Dashboard
// @Failure 400 {object} httperr.Response
// @Router /api/admin/dashboard/{date} [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"))
	if !ok {
		return
	}
	board, err := h.queries.Dashboard(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
