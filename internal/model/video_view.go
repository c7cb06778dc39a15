package model

import (
	"time"
)

// VideoView accumulates a per-pair replay counter rather than logging
// individual view events. ViewCount == 0 is a real state: the video was
// shown to the user and explicitly skipped ("not interested").
type VideoView struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	VideoID   uint64    `gorm:"primaryKey;index:idx_video_id" json:"videoId"`
	ViewCount int       `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (VideoView) TableName() string {
	return "video_views"
}
