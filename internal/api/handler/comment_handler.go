package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/pkg/util"
	"Clipstream/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) Create(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.AddComment(c, userId, req.VideoID, req.Content, req.ParentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) GetComments(c *gin.Context) {
	videoId, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	page, pageSize := getPage(c)

	comments, err := s.commentSvc.GetComments(c, videoId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) GetReplies(c *gin.Context) {
	parentId, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	page, pageSize := getPage(c)

	replies, err := s.commentSvc.GetReplies(c, parentId, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, replies)
}
