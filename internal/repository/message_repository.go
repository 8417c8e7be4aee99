package repository

import (
	"github.com/haydenmontgomery/Warbler/internal/models"
	"gorm.io/gorm"
)

type GormMessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{DB: db}
}

func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.DB.Create(message).Error
}

func (r *GormMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.DB.Preload("User").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *GormMessageRepository) ListByUser(userID uint, limit int) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// Timeline returns the newest messages authored by the user or anyone the
// user follows.
func (r *GormMessageRepository) Timeline(userID uint, limit int) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	followed := r.DB.Model(&models.Follow{}).Select("followed_id").Where("follower_id = ?", userID)
	err := r.DB.Preload("User").
		Where("user_id = ? OR user_id IN (?)", userID, followed).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
}

func (r *GormMessageRepository) Like(userID, messageID uint) error {
	like := models.Like{UserID: userID, MessageID: messageID}
	return r.DB.Create(&like).Error
}

// Unlike is idempotent; removing a like that never existed is a no-op.
func (r *GormMessageRepository) Unlike(userID, messageID uint) error {
	return r.DB.Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

func (r *GormMessageRepository) IsLiked(userID, messageID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormMessageRepository) CountLikes(messageID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error
	return count, err
}

func (r *GormMessageRepository) ListLiked(userID uint) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := r.DB.Preload("User").
		Joins("INNER JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at desc").
		Find(&messages).Error
	return messages, err
}
