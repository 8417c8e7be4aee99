package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/handlers"
	"github.com/haydenmontgomery/Warbler/internal/middleware"
)

func RegisterMessageRoutes(r gin.IRouter, h *handlers.Handler) {
	messages := r.Group("/messages")
	{
		protected := messages.Group("")
		protected.Use(middleware.Auth(h.Users))
		{
			protected.GET("", h.HomeTimeline)
			protected.POST("", middleware.PostRateLimit(), h.CreateMessage)
			protected.DELETE("/:id", h.DeleteMessage)
		}

		// Individual messages are public
		messages.GET("/:id", h.GetMessage)
	}
}
