package api

import (
	"Clipstream/internal/api/middleware"
	"Clipstream/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/:user_id/profile", group.UserHandler.GetProfile)
			userGroup.GET("/:user_id/videos", group.VideoHandler.GetUserVideos)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/me", group.UserHandler.GetMe)
			}
		}

		relationGroup := apiGroup.Group("/user-relation")
		relationGroup.Use(middleware.AuthMiddleware())
		{
			relationGroup.GET("/followers", group.FollowHandler.GetFollowers)
			relationGroup.GET("/followings", group.FollowHandler.GetFollowing)
			relationGroup.GET("/isfollow/:following_id", group.FollowHandler.IsFollowing)
			relationGroup.POST("/follow/:following_id", group.FollowHandler.Follow)
			relationGroup.DELETE("/follow/:following_id", group.FollowHandler.Unfollow)
		}

		videoGroup := apiGroup.Group("/videos")
		{
			videoGroup.GET("/search", group.VideoHandler.Search)
			videoGroup.GET("/detail/:video_id", group.VideoHandler.GetVideo)
			videoGroup.GET("/comments/:video_id", group.CommentHandler.GetComments)
			videoGroup.GET("/replies/:comment_id", group.CommentHandler.GetReplies)

			authGroup := videoGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.VideoHandler.Upload)
				authGroup.DELETE("/:video_id", group.VideoHandler.Delete)
			}
		}

		actionGroup := apiGroup.Group("/video/action")
		actionGroup.Use(middleware.AuthMiddleware())
		{
			actionGroup.POST("/likes/:video_id", group.EngagementHandler.LikeVideo)
			actionGroup.DELETE("/likes/:video_id", group.EngagementHandler.UnlikeVideo)
			actionGroup.POST("/saves/:video_id", group.EngagementHandler.SaveVideo)
			actionGroup.DELETE("/saves/:video_id", group.EngagementHandler.UnsaveVideo)
			actionGroup.POST("/views/:video_id", group.EngagementHandler.ViewVideo)
			actionGroup.POST("/not-interested/:video_id", group.EngagementHandler.MarkNotInterested)
			actionGroup.GET("/state/:video_id", group.EngagementHandler.GetVideoState)
			actionGroup.GET("/saved", group.EngagementHandler.GetSavedVideos)

			actionGroup.POST("/comments", group.CommentHandler.Create)
			actionGroup.POST("/comments/:comment_id/like", group.EngagementHandler.LikeComment)
			actionGroup.DELETE("/comments/:comment_id/like", group.EngagementHandler.UnlikeComment)
		}

		feedGroup := apiGroup.Group("/feed")
		{
			authOptGroup := feedGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/recommend", group.FeedHandler.Recommend)
				authOptGroup.GET("/category", group.FeedHandler.Category)
			}

			authGroup := feedGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/following", group.FeedHandler.Following)
				authGroup.GET("/friends", group.FeedHandler.Friends)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("/list", group.NotificationHandler.List)
			notificationGroup.GET("/unread", group.NotificationHandler.UnreadCount)
			notificationGroup.POST("/read/:notification_id", group.NotificationHandler.MarkRead)
		}

		imGroup := apiGroup.Group("/im")
		{
			imGroup.GET("", group.WsHandler.Connect)
			authGroup := imGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/conversations", group.MessageHandler.CreateConversation)
				authGroup.GET("/conversations", group.MessageHandler.List)
				authGroup.POST("/send", group.MessageHandler.Send)
				authGroup.GET("/history/:conversation_id", group.MessageHandler.History)
			}
		}
	}

	return r
}
