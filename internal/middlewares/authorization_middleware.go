package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/responses"
)

// RequireSuperAdmin gates elevated operations (registering admins,
// listing admins, deleting admins). Must run after Authenticate.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := CurrentAdmin(c)
		if !ok {
			responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
			c.Abort()
			return
		}

		if !admin.IsSuperAdmin {
			responses.Fail(c, http.StatusForbidden, nil, "Authorization failed: super admin privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
