// Package middleware holds the gin middlewares: request logging and the
// access-control guard in front of the admin editing surface.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clementmotivates/core/internal/pkg/jwt"
	"github.com/clementmotivates/core/internal/pkg/response"
	"github.com/clementmotivates/core/internal/session"
)

// ContextKeyAdmin is the gin context key carrying the admin identifier.
const ContextKeyAdmin = "admin_id"

// Auth guards the admin surface. A request passes only with a valid admin
// token AND the session gate still open — logging out invalidates every
// outstanding token.
func Auth(gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil || !gate.IsAuthenticated() {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdmin, claims.Identifier())
		c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin identifier from context.
func CurrentAdmin(c *gin.Context) string {
	v, _ := c.Get(ContextKeyAdmin)
	id, _ := v.(string)
	return id
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
