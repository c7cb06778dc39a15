package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType enumerates the events that produce a notification.
type NotificationType string

const (
	NotifyNewFollower        NotificationType = "NEW_FOLLOWER"
	NotifyVideoLike          NotificationType = "VIDEO_LIKE"
	NotifyVideoComment       NotificationType = "VIDEO_COMMENT"
	NotifyCommentLike        NotificationType = "COMMENT_LIKE"
	NotifyFollowedUserUpload NotificationType = "FOLLOWED_USER_UPLOAD"
	NotifyCommentReply       NotificationType = "COMMENT_REPLY"
)

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      NotificationType   `bson:"type" json:"type"`
	Content   string             `bson:"content" json:"content"`
	Read      bool               `bson:"read" json:"read"`
	UserID    uint64             `bson:"user_id" json:"userId"` // recipient
	ActorID   uint64             `bson:"actor_id,omitempty" json:"actorId"`
	VideoID   uint64             `bson:"video_id,omitempty" json:"videoId"`
	CommentID uint64             `bson:"comment_id,omitempty" json:"commentId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
