package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careconnect-backend-go/internal/models"
)

// RequireRole enforces a minimum role tier for the route. It must run
// after WithProfile. A missing identity is an authentication failure
// (401); an insufficient role is an authorization failure (403). The
// admin tier accepts both admin and super_admin.
func RequireRole(tier models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "authentication required"})
			return
		}
		if !identity.Role.AtLeast(tier) {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody{Error: "insufficient privileges for this operation"})
			return
		}
		c.Next()
	}
}
