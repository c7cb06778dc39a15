package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/pkg/util"
	"Clipstream/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

func (s *VideoHandler) Upload(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var req dto.UploadVideoDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	videoReader, err := videoFile.Open()
	if err != nil {
		response.Error(c, service.ErrUploadFailed)
		return
	}
	defer func() {
		_ = videoReader.Close()
	}()

	input := &service.UploadVideoInput{
		Title:      req.Title,
		Duration:   req.Duration,
		CategoryID: req.CategoryID,
		Tags:       splitTags(req.Tags, req.Title),
		Video: service.MediaFile{
			Reader:      videoReader,
			Size:        videoFile.Size,
			ContentType: videoFile.Header.Get("Content-Type"),
			Filename:    videoFile.Filename,
		},
	}

	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		thumbReader, err := thumbFile.Open()
		if err != nil {
			response.Error(c, service.ErrUploadFailed)
			return
		}
		defer func() {
			_ = thumbReader.Close()
		}()
		input.Thumbnail = &service.MediaFile{
			Reader:      thumbReader,
			Size:        thumbFile.Size,
			ContentType: thumbFile.Header.Get("Content-Type"),
			Filename:    thumbFile.Filename,
		}
	}

	video, err := s.videoSvc.Upload(c, userId, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

// splitTags merges the explicit tag list with hashtags found in the
// title.
func splitTags(raw, title string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	for _, t := range util.ExtractTags(title) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

func (s *VideoHandler) Delete(c *gin.Context) {
	userId := c.GetUint64("user_id")
	videoId, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.videoSvc.Delete(c, userId, videoId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *VideoHandler) GetVideo(c *gin.Context) {
	videoId, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	video, err := s.videoSvc.GetVideo(c, videoId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

func (s *VideoHandler) GetUserVideos(c *gin.Context) {
	targetId, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := getPage(c)

	videos, err := s.videoSvc.GetUserVideos(c, targetId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *VideoHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	page, pageSize := getPage(c)

	videos, err := s.videoSvc.Search(c, keyword, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

// getPage reads page/page_size as page numbers rather than offsets.
func getPage(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	return page, pageSize
}
