package handler

import (
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) List(c *gin.Context) {
	userId := c.GetUint64("user_id")

	notifications, err := s.notificationSvc.GetNotifications(c, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notifications)
}

func (s *NotificationHandler) UnreadCount(c *gin.Context) {
	userId := c.GetUint64("user_id")

	count, err := s.notificationSvc.GetUnreadCount(c, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *NotificationHandler) MarkRead(c *gin.Context) {
	userId := c.GetUint64("user_id")
	notificationId := c.Param("notification_id")
	if notificationId == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	notification, err := s.notificationSvc.MarkRead(c, userId, notificationId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notification)
}
