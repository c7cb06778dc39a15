package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/repository"
	"context"
)

// FeedService composes the simpler feed variants. Ranking beyond
// newest-first is RecommendService's job.
type FeedService interface {
	FollowingFeed(ctx context.Context, userID uint64, limit int) ([]*model.Video, error)
	FriendFeed(ctx context.Context, userID uint64, limit int) ([]*model.Video, error)
	UnauthenticatedFeed(ctx context.Context, limit int) ([]*model.Video, error)
	CategoryFeed(ctx context.Context, categoryID uint64, page, limit int) ([]*model.Video, error)
}

type feedServiceImpl struct {
	videoRepo      repository.VideoRepo
	followRepo     repository.FollowRepo
	engagementRepo repository.EngagementRepo
}

func NewFeedService(
	videoRepo repository.VideoRepo,
	followRepo repository.FollowRepo,
	engagementRepo repository.EngagementRepo,
) FeedService {
	return &feedServiceImpl{
		videoRepo:      videoRepo,
		followRepo:     followRepo,
		engagementRepo: engagementRepo,
	}
}

// seenVideoIDs returns every video the user has a view row for, including
// the not-interested markers. Both feeds exclude all of them.
func (s *feedServiceImpl) seenVideoIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	views, err := s.engagementRepo.GetViewsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.VideoID)
	}
	return ids, nil
}

func (s *feedServiceImpl) FollowingFeed(ctx context.Context, userID uint64, limit int) ([]*model.Video, error) {
	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return []*model.Video{}, nil
	}

	seen, err := s.seenVideoIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.videoRepo.ListByAuthors(ctx, followingIDs, seen, limit)
}

// FriendFeed only considers mutual follows and returns empty immediately
// when there are none.
func (s *feedServiceImpl) FriendFeed(ctx context.Context, userID uint64, limit int) ([]*model.Video, error) {
	mutualIDs, err := s.followRepo.GetMutualFollowIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(mutualIDs) == 0 {
		return []*model.Video{}, nil
	}

	seen, err := s.seenVideoIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.videoRepo.ListByAuthors(ctx, mutualIDs, seen, limit)
}

func (s *feedServiceImpl) UnauthenticatedFeed(ctx context.Context, limit int) ([]*model.Video, error) {
	return s.videoRepo.ListNewest(ctx, limit)
}

// CategoryFeed is paginated newest-first; categoryID 0 means all
// categories.
func (s *feedServiceImpl) CategoryFeed(ctx context.Context, categoryID uint64, page, limit int) ([]*model.Video, error) {
	if page < 1 {
		page = 1
	}
	return s.videoRepo.ListByCategory(ctx, categoryID, limit, (page-1)*limit)
}
