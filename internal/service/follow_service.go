package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) (bool, error)
	Unfollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
}

type followServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
	notifySvc  NotificationService
}

func NewFollowService(
	followRepo repository.FollowRepo,
	userRepo repository.UserRepo,
	notifySvc NotificationService,
) FollowService {
	return &followServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifySvc:  notifySvc,
	}
}

// Follow inserts the edge and returns false when it already exists. A
// successful insert triggers the NEW_FOLLOWER notification; notification
// failures never fail the follow itself.
func (s *followServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == followingID {
		return false, ErrFollowSelf
	}

	followed, err := s.userRepo.GetUserById(ctx, followingID)
	if err != nil {
		return false, err
	}
	if followed == nil {
		return false, ErrUserNotFound
	}

	created, err := s.followRepo.CreateFollow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	if !created {
		return false, nil
	}

	if err := s.notifySvc.NotifyNewFollower(ctx, followerID, followingID); err != nil {
		log.ErrorContext(ctx, "new follower notification failed",
			"followerID", followerID, "followingID", followingID, "err", err)
	}
	return true, nil
}

func (s *followServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return s.followRepo.DeleteFollow(ctx, followerID, followingID)
}

func (s *followServiceImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	return s.followRepo.CheckFollowExists(ctx, followerID, followingID)
}

func (s *followServiceImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

func (s *followServiceImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	return s.followRepo.GetFollowing(ctx, userID, limit, offset)
}
