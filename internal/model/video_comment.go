package model

import (
	"time"
)

type VideoComment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	VideoID   uint64    `gorm:"not null;index:idx_video_id" json:"videoId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	ParentID  uint64    `gorm:"not null;default:0;index:idx_parent_id" json:"parentId"` // 0 means top-level
	Level     int       `gorm:"not null;default:0" json:"level"`
	LikeCount int       `gorm:"not null;default:0" json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (VideoComment) TableName() string {
	return "video_comments"
}
