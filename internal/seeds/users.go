package seeds

import (
	"log"

	"github.com/haydenmontgomery/Warbler/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Username string
	Email    string
	Bio      string
	Location string
}

var sampleUsers = []seedUser{
	{Username: "tuckerdiane", Email: "tuckerdiane@warbler.dev", Bio: "Bird watcher. Warbler early adopter.", Location: "Portland, OR"},
	{Username: "finchfan", Email: "finchfan@warbler.dev", Bio: "Posting warbles about finches.", Location: "Austin, TX"},
	{Username: "songbird", Email: "songbird@warbler.dev", Bio: "All chirps, no filler.", Location: "Brooklyn, NY"},
}

// SeedUsers creates the sample accounts when they don't exist yet and
// returns them ready for message/follow seeding.
func SeedUsers(db *gorm.DB) ([]models.User, error) {
	log.Println("Seeding users...")

	users := make([]models.User, 0, len(sampleUsers))
	for _, su := range sampleUsers {
		var user models.User
		if err := db.Where("username = ?", su.Username).First(&user).Error; err == nil {
			users = append(users, user)
			continue
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user = models.User{
			Username: su.Username,
			Email:    su.Email,
			Password: string(hash),
			Bio:      su.Bio,
			Location: su.Location,
			ImageURL: models.DefaultImageURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		log.Printf("  created user %s", user.Username)
		users = append(users, user)
	}

	return users, nil
}
