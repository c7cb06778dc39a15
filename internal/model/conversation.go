package model

import "time"

const ConversationTypeDirect int8 = 1

type Conversation struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type               int8      `gorm:"not null;default:1" json:"type"`
	SortedParticipants string    `gorm:"uniqueIndex;type:varchar(64)" json:"sortedParticipants"` // "uid1_uid2", ascending
	LastMessageAt      time.Time `gorm:"index" json:"lastMessageAt"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (Conversation) TableName() string { return "conversations" }

type ConversationMember struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint64    `gorm:"uniqueIndex:idx_conv_user" json:"conversationId"`
	UserID         uint64    `gorm:"uniqueIndex:idx_conv_user;index" json:"userId"`
	JoinedAt       time.Time `json:"joinedAt"`
}

func (ConversationMember) TableName() string { return "conversation_members" }
