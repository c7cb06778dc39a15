package repository

import (
	"Clipstream/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.VideoComment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.VideoComment, error)
	GetCommentsByVideoID(ctx context.Context, videoID uint64, limit, offset int) ([]*model.VideoComment, error)
	GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.VideoComment, error)
	CountCommentsByVideoID(ctx context.Context, videoID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

// CreateComment inserts the comment and bumps the video's comments_count
// in one transaction.
func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.VideoComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).
			Where("id = ?", comment.VideoID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
}

func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.VideoComment, error) {
	var comment model.VideoComment
	result := s.db.WithContext(ctx).
		Where("id = ?", commentID).
		First(&comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (s *CommentRepoImpl) GetCommentsByVideoID(ctx context.Context, videoID uint64, limit, offset int) ([]*model.VideoComment, error) {
	var comments []*model.VideoComment
	err := s.db.WithContext(ctx).
		Where("video_id = ? AND parent_id = ?", videoID, 0).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.VideoComment, error) {
	var comments []*model.VideoComment
	err := s.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) CountCommentsByVideoID(ctx context.Context, videoID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.VideoComment{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	return count, err
}
