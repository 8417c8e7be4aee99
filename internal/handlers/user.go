package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/database"
	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/haydenmontgomery/Warbler/pkg/logger"
	"github.com/haydenmontgomery/Warbler/pkg/utils"
	"gorm.io/gorm"
)

const userSearchLimit = 50

// ListUsers handles GET /api/users?q=...
func (h *Handler) ListUsers(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	pattern := ""
	if q := c.Query("q"); q != "" {
		pattern = utils.SanitizeSearchQuery(q)
	}

	users, err := h.Users.Search(pattern, userSearchLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

type userProfile struct {
	User           *models.User     `json:"user"`
	Messages       []models.Message `json:"messages"`
	FollowersCount int64            `json:"followersCount"`
	FollowingCount int64            `json:"followingCount"`
}

// GetUser handles GET /api/users/:id. The profile is cached briefly; writes
// against the profile invalidate it.
func (h *Handler) GetUser(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("user_profile:%d", id)
	var cached userProfile
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	user, err := h.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	messages, err := h.Feed.UserMessages(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	followers, _ := h.Users.CountFollowers(id)
	following, _ := h.Users.CountFollowing(id)

	profile := userProfile{
		User:           user,
		Messages:       messages,
		FollowersCount: followers,
		FollowingCount: following,
	}

	database.CacheSet(cacheKey, profile, 30*time.Second)

	c.JSON(http.StatusOK, profile)
}

// Following handles GET /api/users/:id/following
func (h *Handler) Following(c *gin.Context) {
	h.listRelated(c, h.Users.ListFollowing, "following")
}

// Followers handles GET /api/users/:id/followers
func (h *Handler) Followers(c *gin.Context) {
	h.listRelated(c, h.Users.ListFollowers, "followers")
}

func (h *Handler) listRelated(c *gin.Context, list func(uint) ([]models.User, error), key string) {
	if _, ok := currentUser(c); !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.Users.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
		return
	}

	users, err := list(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{key: users})
}

// LikedMessages handles GET /api/users/:id/likes
func (h *Handler) LikedMessages(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.Users.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
		return
	}

	messages, err := h.Messages.ListLiked(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": messages})
}

// FollowUser handles POST /api/users/follow/:id
func (h *Handler) FollowUser(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	targetID, ok := idParam(c)
	if !ok {
		return
	}

	// The schema allows self-loops; the business rule does not
	if targetID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	if _, err := h.Users.GetByID(targetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
		return
	}

	if err := h.Users.Follow(userID, targetID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Already following, nothing to do
			c.JSON(http.StatusOK, gin.H{"following": true})
			return
		}
		logger.Error().Err(err).Msg("Failed to create follow")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	database.CacheInvalidate(fmt.Sprintf("user_profile:%d", targetID))
	c.JSON(http.StatusOK, gin.H{"following": true})
}

// StopFollowing handles POST /api/users/stop-following/:id. Removing an
// absent edge succeeds quietly.
func (h *Handler) StopFollowing(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	targetID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Users.Unfollow(userID, targetID); err != nil {
		logger.Error().Err(err).Msg("Failed to remove follow")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	database.CacheInvalidate(fmt.Sprintf("user_profile:%d", targetID))
	c.JSON(http.StatusOK, gin.H{"following": false})
}

// ToggleLike handles POST /api/users/add_like/:id
func (h *Handler) ToggleLike(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	messageID, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.Messages.GetByID(messageID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
		return
	}

	liked, err := h.Messages.IsLiked(userID, messageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	if liked {
		err = h.Messages.Unlike(userID, messageID)
	} else {
		err = h.Messages.Like(userID, messageID)
	}
	if err != nil {
		logger.Error().Err(err).Uint("message_id", messageID).Msg("Failed to toggle like")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": !liked})
}

type UpdateProfileInput struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	ImageURL       *string `json:"imageUrl"`
	HeaderImageURL *string `json:"headerImageUrl"`
}

// UpdateProfile handles PATCH /api/users/profile. Only the provided fields
// are persisted.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.ImageURL != nil {
		user.ImageURL = *input.ImageURL
	}
	if input.HeaderImageURL != nil {
		user.HeaderImageURL = *input.HeaderImageURL
	}

	if err := h.Users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		logger.Error().Err(err).Msg("Failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	database.CacheInvalidate(fmt.Sprintf("user_profile:%d", userID))
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteAccount handles DELETE /api/users/delete. Messages, likes, and
// follow edges go with the account in one transaction.
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Users.Delete(userID); err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to delete account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	database.CacheInvalidate(fmt.Sprintf("user_profile:%d", userID))
	logger.Info().Uint("user_id", userID).Msg("Account deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
