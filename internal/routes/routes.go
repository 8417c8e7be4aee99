package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/handlers"
	"github.com/haydenmontgomery/Warbler/internal/middleware"
)

// Register mounts every route group under /api.
func Register(r gin.IRouter, h *handlers.Handler) {
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		RegisterAuthRoutes(auth, h)

		RegisterUserRoutes(api, h)
		RegisterMessageRoutes(api, h)
	}
}
