package models

import "time"

// Follow is a directed edge: FollowerID follows FollowedID. The composite
// key doubles as the uniqueness constraint; self-follows are rejected in the
// service layer, not here.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FollowedID uint      `gorm:"primaryKey;autoIncrement:false" json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID" json:"-"`
}

// Like marks a message as a favorite of a user.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	MessageID uint      `gorm:"primaryKey;autoIncrement:false" json:"messageId"`
	CreatedAt time.Time `json:"createdAt"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Message Message `gorm:"foreignKey:MessageID" json:"-"`
}
