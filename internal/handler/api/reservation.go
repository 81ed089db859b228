package api

import (
	"net/http"
	"strings"

	"savor-sync/internal/domain/reservation"
	reqdto "savor-sync/internal/handler/dto/request"
	resdto "savor-sync/internal/handler/dto/response"
	"savor-sync/internal/handler/httperr"
	"savor-sync/internal/handler/middleware"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

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
// @Description Submit a reservation to the backend. When the backend is unreachable the reservation is queued on the device and returned with syncState pending_local_only.
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client request id (uuid) reused on resync"
// @Param X-Actor-Class header string false "guest or authenticated"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), req.ToDomain(idempotencyKey), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(created, requestLocale(c)))
}

// @Summary List reservations
// @Description Combined view of backend and device-queued reservations for the current actor
// @Tags reservations
// @Produce json
// @Param Accept-Language header string false "en or fr"
// @Success 200 {object} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	records, err := h.queries.List(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(records, requestLocale(c)))
}

// @Summary List reservations grouped
// @Description Combined view split into current and past reservations, newest first
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.GroupedReservationsResponse
// @Router /reservations/grouped [get]
func (h *ReservationHandler) ListGrouped(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	view, err := h.queries.ListGrouped(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGroupedView(view, requestLocale(c)))
}

// @Summary Cancel reservation
// @Description Delete a reservation on the backend. Device-only reservations cannot be cancelled.
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if err := h.commands.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Resync queued reservations
// @Description Replay device-queued reservations with their original client request id
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.ResyncResponse
// @Router /reservations/sync [post]
func (h *ReservationHandler) Sync(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	result, err := h.commands.Resync(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResyncResult(result, requestLocale(c)))
}

// getIdempotencyKey returns "" when the header is absent; the command generates one.
func getIdempotencyKey(c *gin.Context) (string, error) {
	keyStr := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if keyStr == "" {
		return "", nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return "", errs.Wrap(err, "invalid idempotency key format")
	}

	return key.String(), nil
}

func requestLocale(c *gin.Context) string {
	lang := c.GetHeader("Accept-Language")
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return reservation.LocaleEN
	}
	return lang
}
