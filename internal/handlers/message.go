package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/haydenmontgomery/Warbler/pkg/logger"
	"gorm.io/gorm"
)

type CreateMessageInput struct {
	Text string `json:"text" binding:"required"`
}

// CreateMessage handles POST /api/messages
func (h *Handler) CreateMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.Message{
		Text:   input.Text,
		UserID: userID,
	}

	if err := h.Messages.Create(&message); err != nil {
		logger.Error().Err(err).Msg("Failed to create message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// GetMessage handles GET /api/messages/:id
func (h *Handler) GetMessage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	message, err := h.Messages.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch message"})
		return
	}

	likes, _ := h.Messages.CountLikes(id)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"likes":   likes,
	})
}

// DeleteMessage handles DELETE /api/messages/:id. The ownership check runs
// before any mutation; the store never has to reject a non-owner delete.
func (h *Handler) DeleteMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	message, err := h.Messages.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch message"})
		return
	}

	if message.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access unauthorized."})
		return
	}

	if err := h.Messages.Delete(id); err != nil {
		logger.Error().Err(err).Uint("message_id", id).Msg("Failed to delete message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// HomeTimeline handles GET /api/messages: the newest warbles from the
// current user and everyone they follow.
func (h *Handler) HomeTimeline(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.Feed.HomeTimeline(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timeline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
