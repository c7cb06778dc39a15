package handler

import (
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	recommendSvc service.RecommendService
	feedSvc      service.FeedService
}

func NewFeedHandler(recommendSvc service.RecommendService, feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		recommendSvc: recommendSvc,
		feedSvc:      feedSvc,
	}
}

// Recommend serves the personalized For You feed. Anonymous visitors get
// the newest-first fallback instead.
func (s *FeedHandler) Recommend(c *gin.Context) {
	userId := c.GetUint64("user_id")
	_, pageSize := getPage(c)

	if userId == 0 {
		videos, err := s.feedSvc.UnauthenticatedFeed(c, pageSize)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, videos)
		return
	}

	videos, err := s.recommendSvc.Recommend(c, userId, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *FeedHandler) Following(c *gin.Context) {
	userId := c.GetUint64("user_id")
	_, pageSize := getPage(c)

	videos, err := s.feedSvc.FollowingFeed(c, userId, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *FeedHandler) Friends(c *gin.Context) {
	userId := c.GetUint64("user_id")
	_, pageSize := getPage(c)

	videos, err := s.feedSvc.FriendFeed(c, userId, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *FeedHandler) Category(c *gin.Context) {
	categoryId, err := strconv.ParseUint(c.DefaultQuery("category_id", "0"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := getPage(c)

	videos, err := s.feedSvc.CategoryFeed(c, categoryId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}
