package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementSvc: engagementSvc}
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return 0, false
	}
	return id, true
}

func (s *EngagementHandler) LikeVideo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	changed, err := s.engagementSvc.LikeVideo(c, userId, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"liked": true, "changed": changed})
}

func (s *EngagementHandler) UnlikeVideo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	changed, err := s.engagementSvc.UnlikeVideo(c, userId, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"liked": false, "changed": changed})
}

func (s *EngagementHandler) LikeComment(c *gin.Context) {
	userId := c.GetUint64("user_id")
	commentId, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	changed, err := s.engagementSvc.LikeComment(c, userId, commentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"liked": true, "changed": changed})
}

func (s *EngagementHandler) UnlikeComment(c *gin.Context) {
	userId := c.GetUint64("user_id")
	commentId, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	changed, err := s.engagementSvc.UnlikeComment(c, userId, commentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"liked": false, "changed": changed})
}

func (s *EngagementHandler) SaveVideo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	changed, err := s.engagementSvc.SaveVideo(c, userId, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"saved": true, "changed": changed})
}

func (s *EngagementHandler) UnsaveVideo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	changed, err := s.engagementSvc.UnsaveVideo(c, userId, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"saved": false, "changed": changed})
}

func (s *EngagementHandler) ViewVideo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	if _, err := s.engagementSvc.ViewVideo(c, userId, videoId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EngagementHandler) MarkNotInterested(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	if _, err := s.engagementSvc.MarkNotInterested(c, userId, videoId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EngagementHandler) GetVideoState(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	liked, err := s.engagementSvc.IsLiked(c, userId, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	saved, err := s.engagementSvc.IsSaved(c, userId, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.VideoStateDTO{
		VideoID: videoId,
		IsLiked: liked,
		IsSaved: saved,
	})
}

func (s *EngagementHandler) GetSavedVideos(c *gin.Context) {
	userId := c.GetUint64("user_id")
	page, pageSize := getPage(c)

	videos, err := s.engagementSvc.GetSavedVideos(c, userId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}
