package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageContentType mirrors the client-side content discriminator.
type MessageContentType string

const (
	MessageText  MessageContentType = "text"
	MessageImage MessageContentType = "image"
	MessageFile  MessageContentType = "file"
)

type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationID uint64             `bson:"conversation_id" json:"conversationId"`
	SenderID       uint64             `bson:"sender_id" json:"senderId"`
	Content        string             `bson:"content" json:"content"`
	ContentType    MessageContentType `bson:"content_type" json:"contentType"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
