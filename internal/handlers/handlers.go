package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/middleware"
	"github.com/haydenmontgomery/Warbler/internal/repository"
	"github.com/haydenmontgomery/Warbler/internal/services"
	"gorm.io/gorm"
)

// Handler carries the injected store-facing dependencies for every route.
// The *gorm.DB handle is threaded through the repositories at construction;
// no handler reaches for a global connection.
type Handler struct {
	Users    repository.UserRepository
	Messages repository.MessageRepository
	Accounts *services.AccountService
	Feed     *services.FeedService
}

func New(db *gorm.DB) *Handler {
	users := repository.NewUserRepository(db)
	messages := repository.NewMessageRepository(db)
	return &Handler{
		Users:    users,
		Messages: messages,
		Accounts: services.NewAccountService(users),
		Feed:     services.NewFeedService(messages),
	}
}

// currentUser aborts with the generic unauthorized response when no
// authenticated user is on the context.
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
	}
	return id, ok
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
		return 0, false
	}
	return uint(id), true
}
