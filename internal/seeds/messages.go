package seeds

import (
	"log"

	"github.com/haydenmontgomery/Warbler/internal/models"
	"gorm.io/gorm"
)

var sampleTexts = []string{
	"Just spotted a yellow warbler down by the river!",
	"Morning chorus was unreal today.",
	"Does anyone else keep a life list, or is that just me?",
}

// SeedMessages gives each sample user one message and wires up a small
// follow/like graph so the timeline has something to show.
func SeedMessages(db *gorm.DB, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	log.Println("Seeding messages and social graph...")

	var count int64
	db.Model(&models.Message{}).Count(&count)
	if count > 0 {
		log.Println("  messages already present, skipping")
		return nil
	}

	messages := make([]models.Message, 0, len(users))
	for i, user := range users {
		msg := models.Message{
			Text:   sampleTexts[i%len(sampleTexts)],
			UserID: user.ID,
		}
		if err := db.Create(&msg).Error; err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	// Everyone follows the first user; the first user likes the others'
	// messages.
	for _, user := range users[1:] {
		follow := models.Follow{FollowerID: user.ID, FollowedID: users[0].ID}
		if err := db.Create(&follow).Error; err != nil {
			return err
		}
	}
	for _, msg := range messages[1:] {
		like := models.Like{UserID: users[0].ID, MessageID: msg.ID}
		if err := db.Create(&like).Error; err != nil {
			return err
		}
	}

	return nil
}
