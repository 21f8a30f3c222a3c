package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studypal/core/internal/pkg/jwt"
	"github.com/studypal/core/internal/pkg/response"
)

const ContextKeyUserID = "user_id"

// Auth returns a middleware that enforces JWT authentication.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

func extractToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[len("bearer "):])
	}
	return token
}
