package repository

import (
	"Clipstream/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepo interface {
	CreateLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, userID uint64, targetType model.LikeTarget, targetID uint64) (bool, error)
	CheckLikeExists(ctx context.Context, userID uint64, targetType model.LikeTarget, targetID uint64) (bool, error)
	GetLikedVideoIDs(ctx context.Context, userID uint64) ([]uint64, error)

	CreateSave(ctx context.Context, save *model.VideoSave) (bool, error)
	DeleteSave(ctx context.Context, userID, videoID uint64) (bool, error)
	CheckSaveExists(ctx context.Context, userID, videoID uint64) (bool, error)
	GetSavedVideoIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error)

	UpsertView(ctx context.Context, userID, videoID uint64) error
	CreateNotInterested(ctx context.Context, userID, videoID uint64) (bool, error)
	GetView(ctx context.Context, userID, videoID uint64) (*model.VideoView, error)
	GetViewsByUser(ctx context.Context, userID uint64) ([]*model.VideoView, error)
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db}
}

func likeCounterTable(targetType model.LikeTarget) (string, error) {
	switch targetType {
	case model.LikeTargetVideo:
		return "videos", nil
	case model.LikeTargetComment:
		return "video_comments", nil
	default:
		return "", errors.New("unknown like target type: " + string(targetType))
	}
}

// CreateLike inserts the like and bumps the target's like_count in one
// transaction. Returns false when the triple already exists.
func (s *EngagementRepoImpl) CreateLike(ctx context.Context, like *model.Like) (bool, error) {
	table, err := likeCounterTable(like.TargetType)
	if err != nil {
		return false, err
	}
	created := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true
		return tx.Table(table).
			Where("id = ?", like.TargetID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	return created, err
}

func (s *EngagementRepoImpl) DeleteLike(ctx context.Context, userID uint64, targetType model.LikeTarget, targetID uint64) (bool, error) {
	table, err := likeCounterTable(targetType)
	if err != nil {
		return false, err
	}
	deleted := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
			Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Table(table).
			Where("id = ? AND like_count > 0", targetID).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
	})
	return deleted, err
}

func (s *EngagementRepoImpl) CheckLikeExists(ctx context.Context, userID uint64, targetType model.LikeTarget, targetID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetLikedVideoIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var videoIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userID, model.LikeTargetVideo).
		Pluck("target_id", &videoIDs).Error
	return videoIDs, err
}

func (s *EngagementRepoImpl) CreateSave(ctx context.Context, save *model.VideoSave) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(save)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true
		return tx.Model(&model.Video{}).
			Where("id = ?", save.VideoID).
			UpdateColumn("saves_count", gorm.Expr("saves_count + ?", 1)).Error
	})
	return created, err
}

func (s *EngagementRepoImpl) DeleteSave(ctx context.Context, userID, videoID uint64) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Delete(&model.VideoSave{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Model(&model.Video{}).
			Where("id = ? AND saves_count > 0", videoID).
			UpdateColumn("saves_count", gorm.Expr("saves_count - ?", 1)).Error
	})
	return deleted, err
}

func (s *EngagementRepoImpl) CheckSaveExists(ctx context.Context, userID, videoID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.VideoSave{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetSavedVideoIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var videoIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.VideoSave{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Pluck("video_id", &videoIDs).Error
	return videoIDs, err
}

// UpsertView bumps the per-pair replay counter (creating the row at 1 on
// first view) and the video's global views counter, both atomically.
func (s *EngagementRepoImpl) UpsertView(ctx context.Context, userID, videoID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"view_count": gorm.Expr("view_count + 1")}),
		}).Create(&model.VideoView{UserID: userID, VideoID: videoID, ViewCount: 1})
		if result.Error != nil {
			return result.Error
		}
		return tx.Model(&model.Video{}).
			Where("id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	})
}

// CreateNotInterested records the shown-not-watched marker. The video's
// global views counter is untouched: a skipped video is not a view.
func (s *EngagementRepoImpl) CreateNotInterested(ctx context.Context, userID, videoID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.VideoView{UserID: userID, VideoID: videoID, ViewCount: 0})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *EngagementRepoImpl) GetView(ctx context.Context, userID, videoID uint64) (*model.VideoView, error) {
	var view model.VideoView
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		First(&view)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &view, nil
}

func (s *EngagementRepoImpl) GetViewsByUser(ctx context.Context, userID uint64) ([]*model.VideoView, error) {
	var views []*model.VideoView
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&views).Error
	return views, err
}
