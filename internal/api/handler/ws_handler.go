package handler

import (
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/redis"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/pkg/security"
	"Clipstream/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler bridges Redis pub/sub channels onto a websocket so clients
// receive notifications and chat messages as they happen.
type WsHandler struct {
	messageSvc service.MessageService
}

func NewWsHandler(messageSvc service.MessageService) *WsHandler {
	return &WsHandler{messageSvc: messageSvc}
}

func (s *WsHandler) Connect(c *gin.Context) {
	// Browsers cannot set headers on websocket dials, so the token
	// travels as a query param here.
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.ErrTokenInvalid)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("ws auth failed", "err", err)
		response.Error(c, service.ErrTokenInvalid)
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	channels := []string{
		consts.NotificationChannelPrefix + strconv.FormatUint(userID, 10),
	}

	// Optional live-comment streams for the videos the client is
	// watching, e.g. ?videos=12,34.
	if raw := c.Query("videos"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			videoID, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				continue
			}
			channels = append(channels, consts.CommentChannelPrefix+strconv.FormatUint(videoID, 10))
		}
	}

	conversations, err := s.messageSvc.ListConversations(context.Background(), userID)
	if err != nil {
		log.Error("ws conversation list failed", "userID", userID, "err", err)
		return
	}
	for _, conv := range conversations {
		channels = append(channels, consts.MessageChannelPrefix+strconv.FormatUint(conv.ID, 10))
	}

	pubsub := redis.Subscribe(context.Background(), channels...)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("ws connection established", "userID", userID, "channels", len(channels))

	stopChan := make(chan struct{})

	// Read loop only watches for the client hanging up.
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("ws push failed", "userID", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("ws connection closed", "userID", userID)
			return
		}
	}
}
