package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/mongo"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/pkg/util"
	"Clipstream/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

func (s *MessageHandler) CreateConversation(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var req dto.CreateConversationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	conv, err := s.messageSvc.GetOrCreateDirectConversation(c, userId, req.PeerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, conv)
}

func (s *MessageHandler) Send(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var req dto.SendMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	contentType := mongo.MessageContentType(req.ContentType)
	switch contentType {
	case mongo.MessageText, mongo.MessageImage, mongo.MessageFile:
	case "":
		contentType = mongo.MessageText
	default:
		response.Error(c, service.ErrParamInvalid)
		return
	}

	msg, err := s.messageSvc.SendMessage(c, userId, req.ConversationID, req.Content, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

func (s *MessageHandler) History(c *gin.Context) {
	userId := c.GetUint64("user_id")
	convId, err := strconv.ParseUint(c.Param("conversation_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var before time.Time
	if raw := c.Query("before"); raw != "" {
		before, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
	}
	_, pageSize := getPage(c)

	messages, err := s.messageSvc.GetMessages(c, userId, convId, before, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *MessageHandler) List(c *gin.Context) {
	userId := c.GetUint64("user_id")

	conversations, err := s.messageSvc.ListConversations(c, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, conversations)
}
