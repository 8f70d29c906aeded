package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/models"
)

// AdminMiddleware rejects non-admin tokens. Must run after AuthMiddleware,
// which puts the role claim into the context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists || role.(string) != models.RoleAdmin {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireTenant checks the tenantId query parameter against the token's
// tenant claim. A mismatch is reported as unauthorized, not as not-found,
// so tenants cannot probe each other's data.
func RequireTenant(c *gin.Context) (string, bool) {
	requested := c.Query("tenantId")
	claimed, ok := GetTenantIDFromContext(c)
	if !ok || requested == "" || requested != claimed {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - tenant mismatch"))
		c.Abort()
		return "", false
	}
	return claimed, true
}

// RequireTenantMatch checks an explicit tenant id (typically from a request
// body) against the token's tenant claim.
func RequireTenantMatch(c *gin.Context, tenantID string) bool {
	claimed, ok := GetTenantIDFromContext(c)
	if !ok || tenantID == "" || tenantID != claimed {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - tenant mismatch"))
		c.Abort()
		return false
	}
	return true
}
