package repository

import (
	"Clipstream/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	CreateFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	DeleteFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	CheckFollowExists(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetMutualFollowIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// CreateFollow inserts the edge and bumps both counters in one transaction.
// The conflict clause makes the insert race-safe: a duplicate request
// observes RowsAffected == 0 and leaves the counters alone.
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.UserFollow{FollowerID: followerID, FollowingID: followingID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true
		if err := tx.Model(&model.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", followingID).
			UpdateColumn("follower_count", gorm.Expr("follower_count + ?", 1)).Error
	})
	return created, err
}

// DeleteFollow removes the edge and decrements both counters in one
// transaction; a missing edge is a no-op.
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&model.UserFollow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if err := tx.Model(&model.User{}).
			Where("id = ? AND following_count > 0", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count - ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ? AND follower_count > 0", followingID).
			UpdateColumn("follower_count", gorm.Expr("follower_count - ?", 1)).Error
	})
	return deleted, err
}

func (s *FollowRepoImpl) CheckFollowExists(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (s *FollowRepoImpl) GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (s *FollowRepoImpl) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// GetMutualFollowIDs returns accounts the user follows that follow back.
func (s *FollowRepoImpl) GetMutualFollowIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Joins("JOIN user_follows AS back ON back.follower_id = user_follows.following_id AND back.following_id = user_follows.follower_id").
		Where("user_follows.follower_id = ?", userID).
		Pluck("user_follows.following_id", &ids).Error
	return ids, err
}

func (s *FollowRepoImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN user_follows ON user_follows.follower_id = users.id").
		Where("user_follows.following_id = ?", userID).
		Order("user_follows.created_at desc").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}

func (s *FollowRepoImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN user_follows ON user_follows.following_id = users.id").
		Where("user_follows.follower_id = ?", userID).
		Order("user_follows.created_at desc").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}
