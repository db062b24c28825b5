package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-management/pkg/log"
	"inventory-management/pkg/response"
	"inventory-management/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx = scope.SetScopeToContext(ctx, sc)
		ctx = log.SetUserID(ctx, sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Permission rejects callers whose role does not hold perm. It must run after Auth.
func (m Middleware) Permission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !m.HasPermission(sc.Role, perm) {
			m.l.Debugf(c.Request.Context(), "middleware.Permission: role %q lacks %q", sc.Role, perm)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// HasPermission reports whether role holds perm.
func (m Middleware) HasPermission(role, perm string) bool {
	_, ok := m.permissions[role][perm]
	return ok
}
