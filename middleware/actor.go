package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"omm/models"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the acting user from the identity headers the
// platform gateway sets after authenticating the request. Authentication
// itself happens upstream; this service only needs the id and privilege
// level.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := models.Actor{
			ID:    strings.TrimSpace(c.GetHeader("X-Actor-Id")),
			Name:  strings.TrimSpace(c.GetHeader("X-Actor-Name")),
			Admin: strings.EqualFold(c.GetHeader("X-Actor-Role"), "admin"),
		}
		if actor.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing actor identity",
			})
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// Actor returns the acting user stored on the request context.
func Actor(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
