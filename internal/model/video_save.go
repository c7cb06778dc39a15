package model

import (
	"time"
)

type VideoSave struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	VideoID   uint64    `gorm:"primaryKey;index:idx_video_id" json:"videoId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (VideoSave) TableName() string {
	return "video_saves"
}
