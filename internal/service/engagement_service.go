package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type EngagementService interface {
	LikeVideo(ctx context.Context, userID, videoID uint64) (bool, error)
	UnlikeVideo(ctx context.Context, userID, videoID uint64) (bool, error)
	LikeComment(ctx context.Context, userID, commentID uint64) (bool, error)
	UnlikeComment(ctx context.Context, userID, commentID uint64) (bool, error)
	SaveVideo(ctx context.Context, userID, videoID uint64) (bool, error)
	UnsaveVideo(ctx context.Context, userID, videoID uint64) (bool, error)
	ViewVideo(ctx context.Context, userID, videoID uint64) (bool, error)
	MarkNotInterested(ctx context.Context, userID, videoID uint64) (bool, error)
	IsLiked(ctx context.Context, userID, videoID uint64) (bool, error)
	IsSaved(ctx context.Context, userID, videoID uint64) (bool, error)
	GetSavedVideos(ctx context.Context, userID uint64, page, pageSize int) ([]*model.Video, error)
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	videoRepo      repository.VideoRepo
	commentRepo    repository.CommentRepo
	notifySvc      NotificationService
}

func NewEngagementService(
	engagementRepo repository.EngagementRepo,
	videoRepo repository.VideoRepo,
	commentRepo repository.CommentRepo,
	notifySvc NotificationService,
) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		videoRepo:      videoRepo,
		commentRepo:    commentRepo,
		notifySvc:      notifySvc,
	}
}

func (s *engagementServiceImpl) getVideoCheck(ctx context.Context, videoID uint64) (*model.Video, error) {
	video, err := s.videoRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

// LikeVideo is an idempotent toggle: liking an already-liked video is a
// normal false result, not an error.
func (s *engagementServiceImpl) LikeVideo(ctx context.Context, userID, videoID uint64) (bool, error) {
	if _, err := s.getVideoCheck(ctx, videoID); err != nil {
		return false, err
	}

	created, err := s.engagementRepo.CreateLike(ctx, &model.Like{
		UserID:     userID,
		TargetType: model.LikeTargetVideo,
		TargetID:   videoID,
		CreatedAt:  time.Now(),
	})
	if err != nil || !created {
		return false, err
	}

	// Re-read for the post-increment counter the notification text needs.
	video, err := s.videoRepo.GetVideo(ctx, videoID)
	if err == nil && video != nil {
		if err := s.notifySvc.NotifyVideoLike(ctx, userID, video); err != nil {
			log.ErrorContext(ctx, "video like notification failed", "videoID", videoID, "err", err)
		}
	}
	return true, nil
}

func (s *engagementServiceImpl) UnlikeVideo(ctx context.Context, userID, videoID uint64) (bool, error) {
	if _, err := s.getVideoCheck(ctx, videoID); err != nil {
		return false, err
	}
	return s.engagementRepo.DeleteLike(ctx, userID, model.LikeTargetVideo, videoID)
}

func (s *engagementServiceImpl) LikeComment(ctx context.Context, userID, commentID uint64) (bool, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, ErrCommentNotFound
	}

	created, err := s.engagementRepo.CreateLike(ctx, &model.Like{
		UserID:     userID,
		TargetType: model.LikeTargetComment,
		TargetID:   commentID,
		CreatedAt:  time.Now(),
	})
	if err != nil || !created {
		return false, err
	}

	updated, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err == nil && updated != nil {
		if err := s.notifySvc.NotifyCommentLike(ctx, userID, updated); err != nil {
			log.ErrorContext(ctx, "comment like notification failed", "commentID", commentID, "err", err)
		}
	}
	return true, nil
}

func (s *engagementServiceImpl) UnlikeComment(ctx context.Context, userID, commentID uint64) (bool, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, ErrCommentNotFound
	}
	return s.engagementRepo.DeleteLike(ctx, userID, model.LikeTargetComment, commentID)
}

func (s *engagementServiceImpl) SaveVideo(ctx context.Context, userID, videoID uint64) (bool, error) {
	if _, err := s.getVideoCheck(ctx, videoID); err != nil {
		return false, err
	}
	return s.engagementRepo.CreateSave(ctx, &model.VideoSave{
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	})
}

func (s *engagementServiceImpl) UnsaveVideo(ctx context.Context, userID, videoID uint64) (bool, error) {
	if _, err := s.getVideoCheck(ctx, videoID); err != nil {
		return false, err
	}
	return s.engagementRepo.DeleteSave(ctx, userID, videoID)
}

// ViewVideo bumps the per-pair replay counter (creating the row at 1) and
// the video's global views counter.
func (s *engagementServiceImpl) ViewVideo(ctx context.Context, userID, videoID uint64) (bool, error) {
	if _, err := s.getVideoCheck(ctx, videoID); err != nil {
		return false, err
	}
	if err := s.engagementRepo.UpsertView(ctx, userID, videoID); err != nil {
		return false, err
	}
	return true, nil
}

// MarkNotInterested records the shown-not-watched marker so the video is
// excluded from future recommendations. No-op if any view row exists.
func (s *engagementServiceImpl) MarkNotInterested(ctx context.Context, userID, videoID uint64) (bool, error) {
	if _, err := s.getVideoCheck(ctx, videoID); err != nil {
		return false, err
	}
	return s.engagementRepo.CreateNotInterested(ctx, userID, videoID)
}

func (s *engagementServiceImpl) IsLiked(ctx context.Context, userID, videoID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.engagementRepo.CheckLikeExists(ctx, userID, model.LikeTargetVideo, videoID)
}

func (s *engagementServiceImpl) IsSaved(ctx context.Context, userID, videoID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.engagementRepo.CheckSaveExists(ctx, userID, videoID)
}

func (s *engagementServiceImpl) GetSavedVideos(ctx context.Context, userID uint64, page, pageSize int) ([]*model.Video, error) {
	ids, err := s.engagementRepo.GetSavedVideoIDs(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Video{}, nil
	}
	return s.videoRepo.GetVideoByIds(ctx, ids)
}
