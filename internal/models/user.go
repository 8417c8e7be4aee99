package models

import (
	"fmt"
	"time"
)

const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User is an account in the system. It owns its messages; follow and like
// edges live in their own tables keyed by user id.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	ImageURL       string `gorm:"column:image_url;default:'/static/images/default-pic.png'" json:"imageUrl"`
	HeaderImageURL string `gorm:"column:header_image_url;default:'/static/images/warbler-hero.jpg'" json:"headerImageUrl"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`

	Messages []Message `gorm:"foreignKey:UserID" json:"messages,omitempty"`
}

// String returns the canonical diagnostic representation.
func (u *User) String() string {
	return fmt.Sprintf("<User #%d: %s, %s>", u.ID, u.Username, u.Email)
}
