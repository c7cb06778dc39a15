package model

import (
	"time"
)

// LikeTarget discriminates what a like row points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
)

type Like struct {
	UserID     uint64     `gorm:"primaryKey" json:"userId"`
	TargetType LikeTarget `gorm:"primaryKey;type:varchar(10)" json:"targetType"`
	TargetID   uint64     `gorm:"primaryKey;index:idx_target_id" json:"targetId"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
