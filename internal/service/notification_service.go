package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/mongo"
	"Clipstream/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type NotificationService interface {
	NotifyNewFollower(ctx context.Context, actorID, followedID uint64) error
	NotifyVideoLike(ctx context.Context, actorID uint64, video *model.Video) error
	NotifyCommentLike(ctx context.Context, actorID uint64, comment *model.VideoComment) error
	NotifyComment(ctx context.Context, actorID uint64, video *model.Video, comment, parent *model.VideoComment) error
	NotifyUpload(ctx context.Context, uploaderID, followerID uint64, video *model.Video) error

	GetNotifications(ctx context.Context, userID uint64) ([]*mongo.Notification, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, userID uint64, notificationID string) (*mongo.Notification, error)
}

type notificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
	userRepo         repository.UserRepo
	publisher        Publisher
}

func NewNotificationService(
	notificationRepo mongo.NotificationRepo,
	userRepo repository.UserRepo,
	publisher Publisher,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

// create persists the notification and publishes it to the recipient's
// channel. The publish is best-effort: a failure is logged and swallowed,
// the stored notification remains the source of truth.
func (s *notificationServiceImpl) create(ctx context.Context, n *mongo.Notification) error {
	n.CreatedAt = time.Now()
	if err := s.notificationRepo.CreateNotification(ctx, n); err != nil {
		return err
	}

	payload, err := json.Marshal(n)
	if err != nil {
		log.ErrorContext(ctx, "marshal notification failed", "err", err)
		return nil
	}
	channel := consts.NotificationChannelPrefix + strconv.FormatUint(n.UserID, 10)
	if err := s.publisher.Publish(ctx, channel, payload); err != nil {
		log.ErrorContext(ctx, "publish notification failed", "channel", channel, "err", err)
	}
	return nil
}

func (s *notificationServiceImpl) actorName(ctx context.Context, actorID uint64) (string, error) {
	actor, err := s.userRepo.GetUserById(ctx, actorID)
	if err != nil {
		return "", err
	}
	if actor == nil {
		return "", ErrUserNotFound
	}
	return actor.Username, nil
}

// andOthers renders "X" or "X and N others" from the target's counter
// value observed after the triggering increment.
func andOthers(actorName string, totalCount int) string {
	if totalCount > 1 {
		return fmt.Sprintf("%s and %d others", actorName, totalCount-1)
	}
	return actorName
}

func (s *notificationServiceImpl) NotifyNewFollower(ctx context.Context, actorID, followedID uint64) error {
	if actorID == followedID {
		return nil
	}
	actorName, err := s.actorName(ctx, actorID)
	if err != nil {
		return err
	}
	followed, err := s.userRepo.GetUserById(ctx, followedID)
	if err != nil {
		return err
	}
	if followed == nil {
		return ErrUserNotFound
	}

	return s.create(ctx, &mongo.Notification{
		Type:    mongo.NotifyNewFollower,
		Content: fmt.Sprintf("%s started following you. You now have %d followers", actorName, followed.FollowerCount),
		UserID:  followedID,
		ActorID: actorID,
	})
}

func (s *notificationServiceImpl) NotifyVideoLike(ctx context.Context, actorID uint64, video *model.Video) error {
	if actorID == video.UserID {
		return nil
	}
	actorName, err := s.actorName(ctx, actorID)
	if err != nil {
		return err
	}

	return s.create(ctx, &mongo.Notification{
		Type:    mongo.NotifyVideoLike,
		Content: fmt.Sprintf("%s liked your video", andOthers(actorName, video.LikeCount)),
		UserID:  video.UserID,
		ActorID: actorID,
		VideoID: video.ID,
	})
}

func (s *notificationServiceImpl) NotifyCommentLike(ctx context.Context, actorID uint64, comment *model.VideoComment) error {
	if actorID == comment.UserID {
		return nil
	}
	actorName, err := s.actorName(ctx, actorID)
	if err != nil {
		return err
	}

	return s.create(ctx, &mongo.Notification{
		Type:      mongo.NotifyCommentLike,
		Content:   fmt.Sprintf("%s liked your comment", andOthers(actorName, comment.LikeCount)),
		UserID:    comment.UserID,
		ActorID:   actorID,
		VideoID:   comment.VideoID,
		CommentID: comment.ID,
	})
}

// NotifyComment handles both top-level comments (video owner is notified)
// and replies (the parent comment's owner is notified instead). The
// "and N others" suffix only applies to top-level comments.
func (s *notificationServiceImpl) NotifyComment(ctx context.Context, actorID uint64, video *model.Video, comment, parent *model.VideoComment) error {
	if parent != nil {
		if actorID == parent.UserID {
			return nil
		}
		actorName, err := s.actorName(ctx, actorID)
		if err != nil {
			return err
		}
		return s.create(ctx, &mongo.Notification{
			Type:      mongo.NotifyCommentReply,
			Content:   fmt.Sprintf("%s replied to your comment", actorName),
			UserID:    parent.UserID,
			ActorID:   actorID,
			VideoID:   video.ID,
			CommentID: comment.ID,
		})
	}

	if actorID == video.UserID {
		return nil
	}
	actorName, err := s.actorName(ctx, actorID)
	if err != nil {
		return err
	}
	return s.create(ctx, &mongo.Notification{
		Type:      mongo.NotifyVideoComment,
		Content:   fmt.Sprintf("%s commented on your video", andOthers(actorName, video.CommentsCount)),
		UserID:    video.UserID,
		ActorID:   actorID,
		VideoID:   video.ID,
		CommentID: comment.ID,
	})
}

func (s *notificationServiceImpl) NotifyUpload(ctx context.Context, uploaderID, followerID uint64, video *model.Video) error {
	if followerID == uploaderID {
		return nil
	}
	uploaderName, err := s.actorName(ctx, uploaderID)
	if err != nil {
		return err
	}

	return s.create(ctx, &mongo.Notification{
		Type:    mongo.NotifyFollowedUserUpload,
		Content: fmt.Sprintf("%s uploaded a new video: %s", uploaderName, video.Title),
		UserID:  followerID,
		ActorID: uploaderID,
		VideoID: video.ID,
	})
}

func (s *notificationServiceImpl) GetNotifications(ctx context.Context, userID uint64) ([]*mongo.Notification, error) {
	return s.notificationRepo.GetLatestByUser(ctx, userID, consts.NotificationPageSize)
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepo.GetUnreadCount(ctx, userID)
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID uint64, notificationID string) (*mongo.Notification, error) {
	updated, err := s.notificationRepo.MarkAsRead(ctx, userID, notificationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotificationMissing) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return updated, nil
}
