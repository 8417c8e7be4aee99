package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/handlers"
	"github.com/haydenmontgomery/Warbler/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter, h *handlers.Handler) {
	users := r.Group("/users")
	users.Use(middleware.Auth(h.Users))
	{
		// Specific paths first, wildcard last
		users.PATCH("/profile", h.UpdateProfile)
		users.DELETE("/delete", h.DeleteAccount)
		users.POST("/follow/:id", h.FollowUser)
		users.POST("/stop-following/:id", h.StopFollowing)
		users.POST("/add_like/:id", h.ToggleLike)

		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/following", h.Following)
		users.GET("/:id/followers", h.Followers)
		users.GET("/:id/likes", h.LikedMessages)
	}
}
