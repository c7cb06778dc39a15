package model

import (
	"time"
)

type User struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_email" json:"email"`
	Password       string    `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePicture *string   `gorm:"type:varchar(512)" json:"profilePicture"`
	FollowerCount  int       `gorm:"not null;default:0" json:"followerCount"`
	FollowingCount int       `gorm:"not null;default:0" json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
