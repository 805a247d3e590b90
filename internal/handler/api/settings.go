package api

import (
	"net/http"

	"restaurant-booking/internal/domain/restaurant"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	commands commands.SettingsCommands
	queries  queries.SettingsQueries
}

func NewSettingsHandler(commands commands.SettingsCommands, queries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		commands: commands,
		queries:  queries,
	}
}

type SettingsResponse struct {
	Message  string            `json:"message"`
	Settings restaurant.Config `json:"settings"`
}

// @Summary Get settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} restaurant.Config
// @Router /api/admin/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.queries.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Update settings
// @Description Shallow merge: every field present replaces the stored value
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.UpdateSettingsRequest true "Partial configuration"
// @Success 200 {object} api.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cfg, err := h.commands.Update(c.Request.Context(), req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SettingsResponse{Message: "Paramètres mis à jour", Settings: cfg})
}
