// Package handlers contains the gin HTTP handlers. Each handler binds the
// request, delegates to an application use case, and maps the result through
// the dto package.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sips/internal/shared/authorization"
	"sips/internal/shared/constants"
)

// currentUserID reads the authenticated user's id from the request context.
// Returns false when the request is anonymous.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

func currentUserRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}

// parseIDParam parses a positive numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseQueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
