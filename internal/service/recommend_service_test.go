package service

import (
	"Clipstream/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommend_ColdStartRanksByPopularity(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	engagementRepo.On("GetViewsByUser", mock.Anything, uint64(1)).Return([]*model.VideoView{}, nil)
	engagementRepo.On("GetLikedVideoIDs", mock.Anything, uint64(1)).Return([]uint64{}, nil)
	videoRepo.On("ListExcluding", mock.Anything, mock.Anything).Return([]*model.Video{
		{ID: 1, Views: 10, LikeCount: 0},  // score 5
		{ID: 2, Views: 100, LikeCount: 5}, // score 60
		{ID: 3, Views: 0, LikeCount: 10},  // score 20
	}, nil)

	videos, err := svc.Recommend(context.Background(), 1, 10)

	assert.NoError(t, err)
	ids := make([]uint64, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []uint64{2, 3, 1}, ids)
}

func TestRecommend_ColdStartTieBreak(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	engagementRepo.On("GetViewsByUser", mock.Anything, uint64(1)).Return([]*model.VideoView{}, nil)
	engagementRepo.On("GetLikedVideoIDs", mock.Anything, uint64(1)).Return([]uint64{}, nil)
	videoRepo.On("ListExcluding", mock.Anything, mock.Anything).Return([]*model.Video{
		{ID: 1, Views: 10, CreatedAt: older},
		{ID: 2, Views: 10, CreatedAt: newer},
		{ID: 3, Views: 10, CreatedAt: older},
	}, nil)

	videos, err := svc.Recommend(context.Background(), 1, 3)

	assert.NoError(t, err)
	// Equal scores: newest first, then highest ID.
	assert.Equal(t, uint64(2), videos[0].ID)
	assert.Equal(t, uint64(3), videos[1].ID)
	assert.Equal(t, uint64(1), videos[2].ID)
}

func TestRecommend_NotInterestedExcludedOnColdStart(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	// A zero view counter is the not-interested marker; it must not flip the
	// user onto the personalized path and it must reach the exclusion list.
	engagementRepo.On("GetViewsByUser", mock.Anything, uint64(1)).Return([]*model.VideoView{
		{UserID: 1, VideoID: 5, ViewCount: 0},
	}, nil)
	engagementRepo.On("GetLikedVideoIDs", mock.Anything, uint64(1)).Return([]uint64{}, nil)
	videoRepo.On("ListExcluding", mock.Anything, []uint64{5}).Return([]*model.Video{
		{ID: 6, Views: 1},
	}, nil)

	videos, err := svc.Recommend(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, uint64(6), videos[0].ID)
	videoRepo.AssertExpectations(t)
}

func TestRecommend_CategoryBonusOutweighsPopularity(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	engagementRepo.On("GetViewsByUser", mock.Anything, uint64(1)).Return([]*model.VideoView{
		{UserID: 1, VideoID: 2, ViewCount: 1},
	}, nil)
	engagementRepo.On("GetLikedVideoIDs", mock.Anything, uint64(1)).Return([]uint64{}, nil)
	videoRepo.On("GetVideoByIds", mock.Anything, []uint64{2}).Return([]*model.Video{
		{ID: 2, CategoryID: 7},
	}, nil)
	videoRepo.On("ListCandidates", mock.Anything, []uint64{7}, mock.Anything, mock.Anything).
		Return([]*model.Video{
			{ID: 3, CategoryID: 8, Views: 16}, // score 8
			{ID: 4, CategoryID: 7, Views: 2},  // score 1 + 10 bonus
		}, nil)

	videos, err := svc.Recommend(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint64(4), videos[0].ID)
	assert.Equal(t, uint64(3), videos[1].ID)
}

func TestRecommend_ReplayCountsAsFavorite(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	// No explicit like, but a replay past the threshold still personalizes.
	engagementRepo.On("GetViewsByUser", mock.Anything, uint64(1)).Return([]*model.VideoView{
		{UserID: 1, VideoID: 2, ViewCount: ReplayThreshold + 1},
	}, nil)
	engagementRepo.On("GetLikedVideoIDs", mock.Anything, uint64(1)).Return([]uint64{}, nil)
	videoRepo.On("GetVideoByIds", mock.Anything, []uint64{2}).Return([]*model.Video{
		{ID: 2, CategoryID: 7},
	}, nil)
	videoRepo.On("ListCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*model.Video{{ID: 3, CategoryID: 7}}, nil)

	videos, err := svc.Recommend(context.Background(), 1, 1)

	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	videoRepo.AssertNotCalled(t, "ListExcluding", mock.Anything, mock.Anything)
}

func TestRecommend_BackfillAvoidsDuplicates(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	engagementRepo.On("GetViewsByUser", mock.Anything, uint64(1)).Return([]*model.VideoView{
		{UserID: 1, VideoID: 2, ViewCount: 1},
	}, nil)
	engagementRepo.On("GetLikedVideoIDs", mock.Anything, uint64(1)).Return([]uint64{}, nil)
	videoRepo.On("GetVideoByIds", mock.Anything, []uint64{2}).Return([]*model.Video{
		{ID: 2, CategoryID: 7},
	}, nil)
	videoRepo.On("ListCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*model.Video{{ID: 3, CategoryID: 7}}, nil)
	// The backfill pool must exclude both the watched video and the
	// already-selected candidate.
	videoRepo.On("ListExcluding", mock.Anything, mock.MatchedBy(func(ids []uint64) bool {
		seen := make(map[uint64]bool, len(ids))
		for _, id := range ids {
			seen[id] = true
		}
		return seen[2] && seen[3]
	})).Return([]*model.Video{{ID: 9}}, nil)

	videos, err := svc.Recommend(context.Background(), 1, 3)

	assert.NoError(t, err)
	ids := make([]uint64, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []uint64{3, 9}, ids)
}

func TestRecommend_ZeroLimit(t *testing.T) {
	videoRepo := new(MockVideoRepo)
	engagementRepo := new(MockEngagementRepo)
	svc := NewRecommendService(videoRepo, engagementRepo)

	videos, err := svc.Recommend(context.Background(), 1, 0)

	assert.NoError(t, err)
	assert.Empty(t, videos)
	engagementRepo.AssertNotCalled(t, "GetViewsByUser", mock.Anything, mock.Anything)
}
