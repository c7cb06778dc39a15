package wire

import (
	"Clipstream/internal/api"
	"Clipstream/internal/api/config"
	"Clipstream/internal/api/handler"
	"Clipstream/internal/job"
	"Clipstream/internal/pkg/cron"
	"Clipstream/internal/pkg/es"
	"Clipstream/internal/pkg/kafka"
	pkgmongo "Clipstream/internal/pkg/mongo"
	"Clipstream/internal/repository"
	"Clipstream/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components main needs to
// run and shut down.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	followRepo := repository.NewFollowRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	conversationRepo := repository.NewConversationRepo(db)

	notificationRepo := pkgmongo.NewNotificationRepo(mongoDB)
	messageRepo := pkgmongo.NewMessageRepo(mongoDB)
	videoESRepo := es.NewVideoRepo(es.Client)

	publisher := service.NewRedisPublisher()

	notificationService := service.NewNotificationService(notificationRepo, userRepo, publisher)
	userService := service.NewUserService(userRepo)
	followService := service.NewFollowService(followRepo, userRepo, notificationService)
	engagementService := service.NewEngagementService(engagementRepo, videoRepo, commentRepo, notificationService)
	commentService := service.NewCommentService(commentRepo, videoRepo, notificationService, publisher)
	recommendService := service.NewRecommendService(videoRepo, engagementRepo)
	feedService := service.NewFeedService(videoRepo, followRepo, engagementRepo)
	messageService := service.NewMessageService(conversationRepo, messageRepo, userRepo, publisher)

	uploadProducer, err := kafka.NewUploadProducer(cfg)
	if err != nil {
		return nil, err
	}
	videoService := service.NewVideoService(videoRepo, videoESRepo, notificationRepo, uploadProducer)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		FollowHandler:       handler.NewFollowHandler(followService),
		VideoHandler:        handler.NewVideoHandler(videoService),
		EngagementHandler:   handler.NewEngagementHandler(engagementService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		FeedHandler:         handler.NewFeedHandler(recommendService, feedService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		MessageHandler:      handler.NewMessageHandler(messageService),
		WsHandler:           handler.NewWsHandler(messageService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, videoRepo, followRepo, notificationService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewFollowRecountJob(userRepo, videoRepo),
		job.NewEngagementRateJob(videoRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
