package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"savor-sync/internal/handler/api"
	"savor-sync/internal/handler/middleware"
	"savor-sync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session     *api.SessionHandler
	Reservation *api.ReservationHandler
	Owner       *api.OwnerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, actorMiddleware *middleware.ActorMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, actorMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, actorMiddleware *middleware.ActorMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		session := apiGroup.Group("/session")
		{
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Session.Get},
				{Method: http.MethodPost, Path: "/login", Handler: h.Session.Login},
				{Method: http.MethodPost, Path: "/federated", Handler: h.Session.Federated},
				{Method: http.MethodPost, Path: "/guest", Handler: h.Session.Guest},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Session.Logout},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(actorMiddleware.ResolveActor())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/grouped", Handler: h.Reservation.ListGrouped},
				{Method: http.MethodPost, Path: "/sync", Handler: h.Reservation.Sync},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(actorMiddleware.ResolveActor())
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/state", Handler: h.Owner.State},
				{Method: http.MethodGet, Path: "/ownership", Handler: h.Owner.Ownership},
				{Method: http.MethodPost, Path: "/toggle", Handler: h.Owner.Toggle},
				{
					Method:  http.MethodPut,
					Path:    "/reservations/:id/status",
					Handler: h.Owner.UpdateStatus,
					Mw:      []gin.HandlerFunc{actorMiddleware.RequireOwnerMode()},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
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
