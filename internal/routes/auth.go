package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/middlewares"
	"github.com/corexify/backend/internal/services"
)

func registerAuthRoutes(router *gin.Engine, h Handlers, authService *services.AuthService) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)

		// Only an authenticated super admin can create new admins.
		auth.POST("/register",
			middlewares.Authenticate(authService),
			middlewares.RequireSuperAdmin(),
			h.Auth.Register)
	}
}
