package repository

import "github.com/haydenmontgomery/Warbler/internal/models"

// UserRepository is the store-facing surface for accounts and follow edges.
// Implementations receive their *gorm.DB at construction; nothing here
// reaches for a global handle.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Search(q string, limit int) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error

	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
	ListFollowing(userID uint) ([]models.User, error)
	ListFollowers(userID uint) ([]models.User, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

// MessageRepository covers messages and their like edges.
type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(id uint) (*models.Message, error)
	ListByUser(userID uint, limit int) ([]models.Message, error)
	Timeline(userID uint, limit int) ([]models.Message, error)
	Delete(id uint) error

	Like(userID, messageID uint) error
	Unlike(userID, messageID uint) error
	IsLiked(userID, messageID uint) (bool, error)
	CountLikes(messageID uint) (int64, error)
	ListLiked(userID uint) ([]models.Message, error)
}
