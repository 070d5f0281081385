package routes

import "github.com/gin-gonic/gin"

func registerPublicRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		api.POST("/contact", h.Contact.Submit)
		api.POST("/project-inquiry", h.Inquiry.Submit)
		api.GET("/portfolio", h.Portfolio.List)
		api.GET("/portfolio/:id", h.Portfolio.Get)
		api.POST("/subscribe", h.Subscriber.Subscribe)
	}
}
