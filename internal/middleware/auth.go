package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/database"
	"github.com/haydenmontgomery/Warbler/internal/repository"
	"github.com/haydenmontgomery/Warbler/pkg/utils"
)

// Auth validates the Bearer token, rejects revoked tokens, and confirms the
// user still exists before letting the request through. On success the
// current user id is placed in the context under "userId".
func Auth(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
			c.Abort()
			return
		}

		// Tokens revoked via logout stay dead until natural expiry
		if database.IsTokenBlacklisted(claims.GetJTI()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
			c.Abort()
			return
		}

		// A deleted account's tokens must stop working immediately
		if _, err := users.GetByID(claims.UserID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuth sets "userId" when a valid token is present but never aborts;
// anonymous requests pass through untouched.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c); ok && !database.IsTokenBlacklisted(claims.GetJTI()) {
			c.Set("userId", claims.UserID)
			c.Set("claims", claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// CurrentUserID pulls the authenticated user id out of the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
