package repository

import (
	"Clipstream/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type VideoRepo interface {
	CreateVideo(ctx context.Context, video *model.Video, tags []*model.VideoTag) error
	GetVideo(ctx context.Context, id uint64) (*model.Video, error)
	GetVideoByIds(ctx context.Context, ids []uint64) ([]*model.Video, error)
	ListExcluding(ctx context.Context, excludeIDs []uint64) ([]*model.Video, error)
	ListCandidates(ctx context.Context, categoryIDs []uint64, tags []string, excludeIDs []uint64) ([]*model.Video, error)
	ListByAuthors(ctx context.Context, authorIDs, excludeIDs []uint64, limit int) ([]*model.Video, error)
	ListNewest(ctx context.Context, limit int) ([]*model.Video, error)
	ListByCategory(ctx context.Context, categoryID uint64, limit, offset int) ([]*model.Video, error)
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Video, error)
	DeleteVideoCascade(ctx context.Context, id uint64) error
	UpdateEngagementRate(ctx context.Context, id uint64, rate float64) error
	RecountVideoCounters(ctx context.Context, id uint64) error
	ListIDs(ctx context.Context, limit, offset int) ([]uint64, error)
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db: db}
}

func (s *VideoRepoImpl) CreateVideo(ctx context.Context, video *model.Video, tags []*model.VideoTag) error {
	if len(tags) == 0 {
		return s.db.WithContext(ctx).Create(video).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(video).Error; err != nil {
			return err
		}
		for _, t := range tags {
			t.VideoID = video.ID
		}
		return tx.Create(tags).Error
	})
}

func (s *VideoRepoImpl) GetVideo(ctx context.Context, id uint64) (*model.Video, error) {
	var video model.Video
	result := s.db.WithContext(ctx).Preload("User").Preload("Tags").First(&video, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &video, nil
}

func (s *VideoRepoImpl) GetVideoByIds(ctx context.Context, ids []uint64) ([]*model.Video, error) {
	var videos []*model.Video
	err := s.db.WithContext(ctx).Preload("User").Preload("Tags").
		Where("id IN ?", ids).
		Find(&videos).Error
	return videos, err
}

// ListExcluding returns the whole catalog minus the given IDs. Used by the
// cold-start and backfill paths, which rank in memory.
func (s *VideoRepoImpl) ListExcluding(ctx context.Context, excludeIDs []uint64) ([]*model.Video, error) {
	var videos []*model.Video
	query := s.db.WithContext(ctx).Preload("User").Preload("Tags")
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Find(&videos).Error
	return videos, err
}

// ListCandidates returns videos matching the interest profile by category
// membership or tag overlap, minus the given IDs.
func (s *VideoRepoImpl) ListCandidates(ctx context.Context, categoryIDs []uint64, tags []string, excludeIDs []uint64) ([]*model.Video, error) {
	if len(categoryIDs) == 0 && len(tags) == 0 {
		return nil, nil
	}
	var videos []*model.Video
	query := s.db.WithContext(ctx).Preload("User").Preload("Tags")
	switch {
	case len(categoryIDs) > 0 && len(tags) > 0:
		query = query.Where(
			"category_id IN ? OR id IN (?)",
			categoryIDs,
			s.db.Model(&model.VideoTag{}).Select("video_id").Where("tag IN ?", tags),
		)
	case len(categoryIDs) > 0:
		query = query.Where("category_id IN ?", categoryIDs)
	default:
		query = query.Where(
			"id IN (?)",
			s.db.Model(&model.VideoTag{}).Select("video_id").Where("tag IN ?", tags),
		)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Find(&videos).Error
	return videos, err
}

func (s *VideoRepoImpl) ListByAuthors(ctx context.Context, authorIDs, excludeIDs []uint64, limit int) ([]*model.Video, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var videos []*model.Video
	query := s.db.WithContext(ctx).Preload("User").Preload("Tags").
		Where("user_id IN ?", authorIDs)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Order("created_at DESC").Limit(limit).Find(&videos).Error
	return videos, err
}

func (s *VideoRepoImpl) ListNewest(ctx context.Context, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	err := s.db.WithContext(ctx).Preload("User").Preload("Tags").
		Order("created_at DESC").
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (s *VideoRepoImpl) ListByCategory(ctx context.Context, categoryID uint64, limit, offset int) ([]*model.Video, error) {
	var videos []*model.Video
	query := s.db.WithContext(ctx).Preload("User").Preload("Tags")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&videos).Error
	return videos, err
}

func (s *VideoRepoImpl) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Video, error) {
	var videos []*model.Video
	err := s.db.WithContext(ctx).Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&videos).Error
	return videos, err
}

// DeleteVideoCascade removes the video and every engagement row that
// references it, in one transaction.
func (s *VideoRepoImpl) DeleteVideoCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id IN (?)",
			model.LikeTargetComment,
			tx.Model(&model.VideoComment{}).Select("id").Where("video_id = ?", id),
		).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", model.LikeTargetVideo, id).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoSave{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Video{}, id).Error
	})
}

func (s *VideoRepoImpl) UpdateEngagementRate(ctx context.Context, id uint64, rate float64) error {
	return s.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		UpdateColumn("engagement_rate", rate).Error
}

// RecountVideoCounters rewrites the denormalized like/comment/save
// counters from their base tables. Used by the reconciliation job to
// repair drift; views is increment-only and never recounted.
func (s *VideoRepoImpl) RecountVideoCounters(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"like_count":     gorm.Expr("(SELECT COUNT(*) FROM likes WHERE target_type = 'video' AND target_id = ?)", id),
			"comments_count": gorm.Expr("(SELECT COUNT(*) FROM video_comments WHERE video_id = ?)", id),
			"saves_count":    gorm.Expr("(SELECT COUNT(*) FROM video_saves WHERE video_id = ?)", id),
		}).Error
}

func (s *VideoRepoImpl) ListIDs(ctx context.Context, limit, offset int) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Video{}).
		Order("id").
		Limit(limit).Offset(offset).
		Pluck("id", &ids).Error
	return ids, err
}
