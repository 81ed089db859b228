package api

import (
	"net/http"

	reqdto "savor-sync/internal/handler/dto/request"
	resdto "savor-sync/internal/handler/dto/response"
	"savor-sync/internal/handler/httperr"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	commands commands.SessionCommands
	queries  queries.SessionQueries
}

func NewSessionHandler(commands commands.SessionCommands, queries queries.SessionQueries) *SessionHandler {
	return &SessionHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.respondWithSession(c)
}

// @Summary Local login
// @Description Persist a backend-issued session token and user id
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Session token"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.SignInLocal(c.Request.Context(), req.Token, req.UserID); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respondWithSession(c)
}

// @Summary Federated sign-in
// @Description Store the federated identity tokens obtained by the UI
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.FederatedSignInRequest true "Federated tokens"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /session/federated [post]
func (h *SessionHandler) Federated(c *gin.Context) {
	var req reqdto.FederatedSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.SignInFederated(c.Request.Context(), req.ToCommand()); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respondWithSession(c)
}

// @Summary Continue as guest
// @Tags session
// @Produce json
// @Success 200 {object} resdto.GuestSessionResponse
// @Router /session/guest [post]
func (h *SessionHandler) Guest(c *gin.Context) {
	id, err := h.commands.ContinueAsGuest(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.GuestSessionResponse{GuestSessionID: id})
}

// @Summary Logout
// @Tags session
// @Success 204
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.commands.Logout(c.Request.Context()); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) respondWithSession(c *gin.Context) {
	view, err := h.queries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}
