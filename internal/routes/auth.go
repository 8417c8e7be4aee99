package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/handlers"
	"github.com/haydenmontgomery/Warbler/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter, h *handlers.Handler) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	// Logout needs the claims to revoke the token
	r.POST("/logout", middleware.Auth(h.Users), h.Logout)
}
