package model

import (
	"time"
)

type Video struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	VideoKey       string    `gorm:"type:varchar(512);not null" json:"videoKey"`
	ThumbnailURL   string    `gorm:"type:varchar(512)" json:"thumbnailUrl"`
	Duration       int       `gorm:"not null" json:"duration"`
	CategoryID     uint64    `gorm:"not null;default:0;index:idx_category_id" json:"categoryId"`
	LikeCount      int       `gorm:"not null;default:0" json:"likeCount"`
	Views          int       `gorm:"not null;default:0" json:"views"`
	CommentsCount  int       `gorm:"not null;default:0" json:"commentsCount"`
	SavesCount     int       `gorm:"not null;default:0" json:"savesCount"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagementRate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	User User       `gorm:"foreignKey:UserID;references:ID" json:"user"`
	Tags []VideoTag `gorm:"foreignKey:VideoID;references:ID" json:"tags"`
}

func (Video) TableName() string {
	return "videos"
}

type VideoTag struct {
	VideoID uint64 `gorm:"primaryKey" json:"videoId"`
	Tag     string `gorm:"primaryKey;type:varchar(50);index:idx_tag" json:"tag"`
}

func (VideoTag) TableName() string {
	return "video_tags"
}
