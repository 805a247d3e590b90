package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(commands commands.ReservationCommands, queries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Create reservation
// @Description Submit a booking request. It starts pending and gets the smallest free table that fits.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreatedReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), req.ToDraft(c.ClientIP()))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreated(created))
}

// @Summary Reservation status
// @Description Limited public view of a reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Status(c *gin.Context) {
	view, err := h.queries.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusView(view))
}

// @Summary List reservations
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param date query string false "YYYY-MM-DD"
// @Param status query string false "pending | confirmed | cancelled"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MessageInvalidRequest, nil)
		return
	}

	page, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationPage(page))
}

// @Summary Get reservation
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	r, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(r))
}

// @Summary Confirm reservation
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationActionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/reservations/{id}/confirm [put]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	r, err := h.commands.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationActionResponse{
		Message:     "Réservation confirmée",
		Reservation: resdto.FromReservation(r),
	})
}

// @Summary Cancel reservation
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest false "Optional reason"
// @Success 200 {object} resdto.ReservationActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/reservations/{id}/cancel [put]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	r, err := h.commands.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationActionResponse{
		Message:     "Réservation annulée",
		Reservation: resdto.FromReservation(r),
	})
}

// @Summary Delete reservation
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.commands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Réservation supprimée"})
}
