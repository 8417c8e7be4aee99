package repository

import (
	"github.com/haydenmontgomery/Warbler/internal/models"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Search lists users whose username or email matches the (already escaped)
// pattern. An empty query lists everyone up to the limit.
func (r *GormUserRepository) Search(pattern string, limit int) ([]models.User, error) {
	users := make([]models.User, 0)
	q := r.DB.Order("username asc").Limit(limit)
	if pattern != "" {
		q = q.Where("username LIKE ? OR email LIKE ?", pattern, pattern)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Update(user *models.User) error {
	return r.DB.Save(user).Error
}

// Delete removes a user and everything hanging off it: likes on the user's
// messages, the user's own likes, the messages themselves, and both
// directions of follow edges. One transaction, so a failure rolls back all
// of it.
func (r *GormUserRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		ownMessages := tx.Model(&models.Message{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("message_id IN (?)", ownMessages).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

func (r *GormUserRepository) Follow(followerID, followedID uint) error {
	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	return r.DB.Create(&follow).Error
}

// Unfollow removes the edge. Removing an edge that does not exist is a no-op.
func (r *GormUserRepository) Unfollow(followerID, followedID uint) error {
	return r.DB.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

func (r *GormUserRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// IsFollowedBy reports whether other follows the user; the reverse edge of
// IsFollowing.
func (r *GormUserRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}

func (r *GormUserRepository) ListFollowing(userID uint) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.DB.
		Joins("INNER JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at desc").
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) ListFollowers(userID uint) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.DB.
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("follows.created_at desc").
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *GormUserRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
