package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smart-auction/services/auction/helpers"
	"smart-auction/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware copies the authenticated caller identity from the
// X-User-ID / X-User-Role headers into the request context. The headers
// are set by the upstream auth layer; this service never sees credentials.
func IdentityMiddleware(c *gin.Context) {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		c.Set(helpers.ContextUserID, userID)
		c.Set(helpers.ContextUserRole, c.GetHeader("X-User-Role"))
	}
	c.Next()
}

// RequireAuth rejects requests that carry no caller identity
func RequireAuth(c *gin.Context) {
	if _, ok := c.Get(helpers.ContextUserID); !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNotAuthenticated, "authentication required")
		c.Abort()
		return
	}
	c.Next()
}

// RequireRole rejects callers whose role is not in the allowed set
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(helpers.ContextUserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, errRoleNotAllowed, "role not authorized for this action")
		c.Abort()
	}
}

var (
	errNotAuthenticated = &authError{"missing caller identity"}
	errRoleNotAllowed   = &authError{"caller role not allowed"}
)

type authError struct{ msg string }

func (e *authError) Error() string { return e.msg }
