package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotificationMissing = errors.New("notification missing")

type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *Notification) error
	GetLatestByUser(ctx context.Context, userID uint64, limit int64) ([]*Notification, error)
	MarkAsRead(ctx context.Context, userID uint64, notificationID string) (*Notification, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	DeleteByVideo(ctx context.Context, videoID uint64) error
}

type notificationRepoImpl struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepoImpl{
		col: db.Collection("notifications"),
	}
}

func (s *notificationRepoImpl) CreateNotification(ctx context.Context, n *Notification) error {
	_, err := s.col.InsertOne(ctx, n)
	return err
}

// GetLatestByUser returns the user's most recent notifications, newest first.
func (s *notificationRepoImpl) GetLatestByUser(ctx context.Context, userID uint64, limit int64) ([]*Notification, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*Notification
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkAsRead flips the read flag. The filter includes the owner, so a
// notification belonging to someone else reads as missing.
func (s *notificationRepoImpl) MarkAsRead(ctx context.Context, userID uint64, notificationID string) (*Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, ErrNotificationMissing
	}
	filter := bson.M{"_id": objectID, "user_id": userID}
	update := bson.M{"$set": bson.M{"read": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Notification
	err = s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotificationMissing
		}
		return nil, err
	}
	return &updated, nil
}

func (s *notificationRepoImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"user_id": userID, "read": false}
	return s.col.CountDocuments(ctx, filter)
}

// DeleteByVideo removes every notification referencing the video. Used by
// the video delete cascade.
func (s *notificationRepoImpl) DeleteByVideo(ctx context.Context, videoID uint64) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"video_id": videoID})
	return err
}
