package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/middlewares"
	"github.com/corexify/backend/internal/services"
)

func registerAdminRoutes(router *gin.Engine, h Handlers, authService *services.AuthService) {
	admin := router.Group("/admin")
	admin.Use(middlewares.Authenticate(authService))
	{
		admin.GET("/dashboard/stats", h.Dashboard.Stats)

		admin.GET("/contacts", h.Contact.List)
		admin.PUT("/contacts/:id/read", h.Contact.MarkAsRead)
		admin.DELETE("/contacts/:id", h.Contact.Delete)

		admin.GET("/inquiries", h.Inquiry.List)
		admin.PUT("/inquiries/:id/status", h.Inquiry.UpdateStatus)
		admin.DELETE("/inquiries/:id", h.Inquiry.Delete)

		admin.GET("/portfolio", h.Portfolio.List)
		admin.POST("/portfolio", h.Portfolio.Create)
		admin.PUT("/portfolio/:id", h.Portfolio.Update)
		admin.DELETE("/portfolio/:id", h.Portfolio.Delete)

		admin.GET("/subscribers", h.Subscriber.List)
		admin.DELETE("/subscribers/:id", h.Subscriber.Delete)

		// Super-admin-only management surface.
		super := admin.Group("", middlewares.RequireSuperAdmin())
		{
			super.GET("/admins", h.AdminUser.List)
			super.DELETE("/admins/:id", h.AdminUser.Delete)
		}
	}
}
