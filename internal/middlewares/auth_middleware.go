package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
)

const adminContextKey = "currentAdmin"

// Authenticate verifies the bearer token and resolves it to a live admin
// record, which it stores in the request context for handlers.
func Authenticate(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			responses.Fail(c, http.StatusUnauthorized, nil, "Token is missing")
			c.Abort()
			return
		}

		// Accept both "Bearer <token>" and a bare token.
		token = strings.TrimPrefix(token, "Bearer ")

		admin, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				responses.Fail(c, http.StatusUnauthorized, err, "Token is invalid or expired")
			case errors.Is(err, services.ErrUnknownTokenSubject):
				responses.Fail(c, http.StatusUnauthorized, err, "Invalid token user")
			default:
				responses.Fail(c, http.StatusInternalServerError, err, "Unexpected error")
			}
			c.Abort()
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// CurrentAdmin retrieves the admin injected by Authenticate.
func CurrentAdmin(c *gin.Context) (*models.AdminUser, bool) {
	v, exists := c.Get(adminContextKey)
	if !exists {
		return nil, false
	}
	admin, ok := v.(*models.AdminUser)
	return admin, ok
}
