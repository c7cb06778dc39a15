package api

import "Clipstream/internal/api/handler"

// HandlersGroup bundles all initialized handlers for router setup.
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	FollowHandler       *handler.FollowHandler
	VideoHandler        *handler.VideoHandler
	EngagementHandler   *handler.EngagementHandler
	CommentHandler      *handler.CommentHandler
	FeedHandler         *handler.FeedHandler
	NotificationHandler *handler.NotificationHandler
	MessageHandler      *handler.MessageHandler
	WsHandler           *handler.WsHandler
}
