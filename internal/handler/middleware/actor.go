package middleware

import (
	"log/slog"
	"net/http"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/handler/httperr"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/ownership"
	"savor-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	ActorClassHeader     = "X-Actor-Class"
	idempotencyKeyHeader = "Idempotency-Key"
	ctxActorKey          = "actor_class"
)

type ActorMiddleware struct {
	sessions queries.SessionQueries
	gate     ownership.Gate
}

func NewActorMiddleware(sessions queries.SessionQueries, gate ownership.Gate) *ActorMiddleware {
	return &ActorMiddleware{
		sessions: sessions,
		gate:     gate,
	}
}

// ResolveActor picks the actor class from the X-Actor-Class header when the
// UI sends one, otherwise from the persisted session.
func (m *ActorMiddleware) ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader(ActorClassHeader); header != "" {
			actor, err := auth.ParseActorClass(header)
			if err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid actor class", nil)
				return
			}
			c.Set(ctxActorKey, actor)
			c.Next()
			return
		}

		view, err := m.sessions.Current(c.Request.Context())
		if err != nil {
			slog.Warn("Session lookup failed in actor middleware", "error", err.Error())
			httperr.AbortWithUsecaseError(c, err)
			return
		}
		c.Set(ctxActorKey, view.Actor)
		c.Next()
	}
}

// RequireOwnerMode must run after ResolveActor.
func (m *ActorMiddleware) RequireOwnerMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || actor != auth.ActorAuthenticated {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrOwnerModeRequired, "Owner mode requires a signed-in store owner", nil)
			return
		}
		if err := m.gate.RequireOwnerMode(c.Request.Context()); err != nil {
			httperr.AbortWithUsecaseError(c, err)
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) (auth.ActorClass, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return "", false
	}
	actor, ok := v.(auth.ActorClass)
	return actor, ok
}
