package handler

import (
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	followingId, err := strconv.ParseUint(c.Param("following_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	created, err := s.followSvc.Follow(c, userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": true, "changed": created})
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	followingId, err := strconv.ParseUint(c.Param("following_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	removed, err := s.followSvc.Unfollow(c, userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": false, "changed": removed})
}

func (s *FollowHandler) IsFollowing(c *gin.Context) {
	userId := c.GetUint64("user_id")
	followingId, err := strconv.ParseUint(c.Param("following_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	following, err := s.followSvc.IsFollowing(c, userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": following})
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	followers, err := s.followSvc.GetFollowers(c, userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *FollowHandler) GetFollowing(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	following, err := s.followSvc.GetFollowing(c, userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, following)
}

// getPagination reads page/page_size query params with sane bounds.
func getPagination(c *gin.Context) (limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}
