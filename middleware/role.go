package middleware

import (
	"net/http"

	"hireme/models"

	"github.com/gin-gonic/gin"
)

// ContextActingRole is the context key for the capacity the caller is
// acting in for this request.
const ContextActingRole = "actingRole"

// ActingRoleMiddleware reads the X-Acting-Role header into the request
// context. The role is an explicit per-request value, not a flag on the
// account; it defaults to customer.
func ActingRoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetHeader("X-Acting-Role"))
		if role == "" {
			role = models.RoleCustomer
		}
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown acting role"})
			return
		}
		c.Set(ContextActingRole, role)
		c.Next()
	}
}

// ActingRole reads the acting role from the request context.
func ActingRole(c *gin.Context) models.Role {
	if v, ok := c.Get(ContextActingRole); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleCustomer
}
