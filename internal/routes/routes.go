package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/handlers"
	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
)

// Handlers bundles everything the route tree needs.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Contact    *handlers.ContactHandler
	Inquiry    *handlers.InquiryHandler
	Portfolio  *handlers.PortfolioHandler
	AdminUser  *handlers.AdminUserHandler
	Subscriber *handlers.SubscriberHandler
	Dashboard  *handlers.DashboardHandler
}

// RegisterRoutes wires the public, auth and admin route groups.
func RegisterRoutes(router *gin.Engine, h Handlers, authService *services.AuthService) {
	router.GET("/", func(c *gin.Context) {
		responses.Success(c, http.StatusOK, nil, "Backend is running!")
	})

	registerPublicRoutes(router, h)
	registerAuthRoutes(router, h, authService)
	registerAdminRoutes(router, h, authService)
}
