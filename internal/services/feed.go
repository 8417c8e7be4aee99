package services

import (
	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/haydenmontgomery/Warbler/internal/repository"
)

// DefaultFeedLimit bounds the home timeline the same way the profile page
// caps the per-user message list.
const DefaultFeedLimit = 100

// FeedService assembles timelines out of the message store.
type FeedService struct {
	Messages repository.MessageRepository
}

func NewFeedService(messages repository.MessageRepository) *FeedService {
	return &FeedService{Messages: messages}
}

// HomeTimeline returns the newest messages from the user and the users they
// follow, newest first.
func (s *FeedService) HomeTimeline(userID uint) ([]models.Message, error) {
	return s.Messages.Timeline(userID, DefaultFeedLimit)
}

// UserMessages returns a user's own messages, newest first.
func (s *FeedService) UserMessages(userID uint) ([]models.Message, error) {
	return s.Messages.ListByUser(userID, DefaultFeedLimit)
}
