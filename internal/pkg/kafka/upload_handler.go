package kafka

import (
	"Clipstream/internal/model"
	"Clipstream/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const notifyAttempts = 3

// The handler only needs these three operations; repository.VideoRepo,
// repository.FollowRepo and service.NotificationService all satisfy them.
type videoGetter interface {
	GetVideo(ctx context.Context, id uint64) (*model.Video, error)
}

type followerLister interface {
	GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type uploadNotifier interface {
	NotifyUpload(ctx context.Context, uploaderID, followerID uint64, video *model.Video) error
}

// UploadsHandler fans one upload event out into a notification per
// follower of the uploader.
type UploadsHandler struct {
	videoRepo           videoGetter
	followRepo          followerLister
	notificationService uploadNotifier
}

func NewUploadsHandler(
	videoRepo videoGetter,
	followRepo followerLister,
	notificationService uploadNotifier,
) *UploadsHandler {
	return &UploadsHandler{
		videoRepo:           videoRepo,
		followRepo:          followRepo,
		notificationService: notificationService,
	}
}

func (s *UploadsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("upload fan-out consumer setup")
	return nil
}

func (s *UploadsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("upload fan-out consumer cleanup")
	return nil
}

func (s *UploadsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-upload consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-upload process batch error", "err", err)
		return err
	}
	return nil
}

func (s *UploadsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event service.UploadEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// A malformed payload never becomes valid; skip it.
		log.Error("unmarshal upload event error", "err", err)
		return nil
	}

	video, err := s.videoRepo.GetVideo(ctx, event.VideoID)
	if err != nil {
		return err
	}
	if video == nil {
		// Deleted before fan-out ran, nothing to notify about.
		log.InfoContext(ctx, "upload fan-out skipped, video gone", "videoID", event.VideoID)
		return nil
	}

	followerIDs, err := s.followRepo.GetFollowerIDs(ctx, event.UploaderID)
	if err != nil {
		return err
	}

	for _, followerID := range followerIDs {
		s.notifyFollower(ctx, event.UploaderID, followerID, video)
	}
	return nil
}

// notifyFollower retries a few times, then drops the single recipient so
// one bad write cannot stall the rest of the fan-out.
func (s *UploadsHandler) notifyFollower(ctx context.Context, uploaderID, followerID uint64, video *model.Video) {
	var err error
	for attempt := 0; attempt < notifyAttempts; attempt++ {
		err = s.notificationService.NotifyUpload(ctx, uploaderID, followerID, video)
		if err == nil {
			return
		}
		time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
	}
	log.ErrorContext(ctx, "upload notification dropped",
		"uploaderID", uploaderID, "followerID", followerID, "videoID", video.ID, "err", err)
}
