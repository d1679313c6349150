package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sips/internal/shared/constants"
)

// CapabilityChecker reports whether a role holds a capability. Satisfied by
// the casbin-backed enforcer in infrastructure/authz.
type CapabilityChecker interface {
	Enforce(role string, resource string, action string) (bool, error)
}

// RequireCapability aborts the request unless the authenticated user's role
// holds the given capability. Access decisions go through the checker rather
// than comparing role strings in handlers.
func RequireCapability(checker CapabilityChecker, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		allowed, err := checker.Enforce(userRole, resource, action)
		if err != nil || !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
