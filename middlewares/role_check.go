package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cvargas352/Projeto-integrador-final/utils"
)

// RequireRole guards a route group to the given roles. Must run after
// AuthMiddleware, which puts the role into the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden,
			fmt.Errorf("role %v has no access to this resource", userRole))
		c.Abort()
	}
}
