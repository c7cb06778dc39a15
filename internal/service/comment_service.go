package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// MaxCommentDepth caps visible nesting. A reply that would land deeper is
// re-parented to its grandparent and clamped to the last allowed level.
const MaxCommentDepth = 3

type CommentService interface {
	AddComment(ctx context.Context, userID, videoID uint64, content string, parentID uint64) (*model.VideoComment, error)
	GetComments(ctx context.Context, videoID uint64, page, pageSize int) ([]*model.VideoComment, error)
	GetReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*model.VideoComment, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	videoRepo   repository.VideoRepo
	notifySvc   NotificationService
	publisher   Publisher
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	videoRepo repository.VideoRepo,
	notifySvc NotificationService,
	publisher Publisher,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		notifySvc:   notifySvc,
		publisher:   publisher,
	}
}

func (s *commentServiceImpl) AddComment(ctx context.Context, userID, videoID uint64, content string, parentID uint64) (*model.VideoComment, error) {
	video, err := s.videoRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	var requestedParent *model.VideoComment
	var storedParentID uint64
	level := 0

	if parentID > 0 {
		requestedParent, err = s.commentRepo.GetCommentByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if requestedParent == nil || requestedParent.VideoID != videoID {
			return nil, ErrCommentNotFound
		}

		storedParentID = requestedParent.ID
		level = requestedParent.Level + 1
		if level >= MaxCommentDepth {
			// Re-parent to the grandparent so the thread never renders
			// deeper than MaxCommentDepth levels.
			storedParentID = requestedParent.ParentID
			level = MaxCommentDepth - 1
		}
	}

	comment := &model.VideoComment{
		VideoID:   videoID,
		UserID:    userID,
		Content:   content,
		ParentID:  storedParentID,
		Level:     level,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	// Counter state after the increment drives the notification text.
	updatedVideo, err := s.videoRepo.GetVideo(ctx, videoID)
	if err != nil || updatedVideo == nil {
		updatedVideo = video
	}
	if err := s.notifySvc.NotifyComment(ctx, userID, updatedVideo, comment, requestedParent); err != nil {
		log.ErrorContext(ctx, "comment notification failed", "videoID", videoID, "err", err)
	}

	if payload, err := json.Marshal(comment); err == nil {
		channel := consts.CommentChannelPrefix + strconv.FormatUint(videoID, 10)
		if err := s.publisher.Publish(ctx, channel, payload); err != nil {
			log.ErrorContext(ctx, "comment publish failed", "channel", channel, "err", err)
		}
	}

	return comment, nil
}

func (s *commentServiceImpl) GetComments(ctx context.Context, videoID uint64, page, pageSize int) ([]*model.VideoComment, error) {
	return s.commentRepo.GetCommentsByVideoID(ctx, videoID, pageSize, (page-1)*pageSize)
}

func (s *commentServiceImpl) GetReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*model.VideoComment, error) {
	return s.commentRepo.GetRepliesByParentID(ctx, parentID, pageSize, (page-1)*pageSize)
}
