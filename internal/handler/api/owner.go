package api

import (
	"net/http"
	"strings"

	reqdto "savor-sync/internal/handler/dto/request"
	resdto "savor-sync/internal/handler/dto/response"
	"savor-sync/internal/handler/httperr"
	"savor-sync/internal/handler/middleware"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/ownership"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	gate     ownership.Gate
	commands commands.ReservationCommands
}

func NewOwnerHandler(gate ownership.Gate, commands commands.ReservationCommands) *OwnerHandler {
	return &OwnerHandler{
		gate:     gate,
		commands: commands,
	}
}

// @Summary Owner mode state
// @Tags owner
// @Produce json
// @Success 200 {object} resdto.OwnerStateResponse
// @Router /owner/state [get]
func (h *OwnerHandler) State(c *gin.Context) {
	state, err := h.gate.State(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerState(state))
}

// @Summary Check store ownership
// @Description Ask the backend whether the signed-in user owns a store. Any failure reads as no store.
// @Tags owner
// @Produce json
// @Success 200 {object} resdto.OwnershipResponse
// @Router /owner/ownership [get]
func (h *OwnerHandler) Ownership(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnership(h.gate.CheckOwnership(c.Request.Context(), actor)))
}

// @Summary Toggle owner mode
// @Tags owner
// @Produce json
// @Success 200 {object} resdto.OwnerStateResponse
// @Router /owner/toggle [post]
func (h *OwnerHandler) Toggle(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	state, err := h.gate.ToggleOwnerMode(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerState(state))
}

// @Summary Update reservation status
// @Description Store-owner status change. Only the transition to picked_up is accepted from this client.
// @Tags owner
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Target and current status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /owner/reservations/{id}/status [put]
func (h *OwnerHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	from, to := req.ToDomain()
	updated, err := h.commands.TransitionStatus(c.Request.Context(), strings.TrimSpace(c.Param("id")), from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(updated, requestLocale(c)))
}
