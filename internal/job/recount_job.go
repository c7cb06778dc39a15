package job

import (
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/logger"
	"Clipstream/internal/pkg/redis"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const recountPageSize = 500

// FollowRecountJob rewrites the denormalized counters from their base
// tables: follower/following per user, like/comment/save per video. The
// incremental updates are correct under normal operation; this repairs
// drift after crashes or manual data fixes.
type FollowRecountJob struct {
	userRepo  repository.UserRepo
	videoRepo repository.VideoRepo
}

func NewFollowRecountJob(userRepo repository.UserRepo, videoRepo repository.VideoRepo) *FollowRecountJob {
	return &FollowRecountJob{
		userRepo:  userRepo,
		videoRepo: videoRepo,
	}
}

func (s *FollowRecountJob) Run() {
	traceID := "job-recount-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// Only one instance should recount at a time.
	locked, err := redis.TryLock(ctx, consts.RecountLock, traceID, 30*time.Minute, 0)
	if err != nil || !locked {
		log.InfoContext(ctx, "recount job skipped, lock held elsewhere")
		return
	}
	defer redis.UnLock(ctx, consts.RecountLock, traceID)

	log.InfoContext(ctx, "start follow counter recount")

	total := 0
	for offset := 0; ; offset += recountPageSize {
		ids, err := s.userRepo.ListUserIDs(ctx, recountPageSize, offset)
		if err != nil {
			log.ErrorContext(ctx, "list user ids error", "offset", offset, "err", err)
			return
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if err := s.userRepo.RecountFollowCounters(ctx, id); err != nil {
				log.ErrorContext(ctx, "recount follow counters error", "userID", id, "err", err)
				continue
			}
			total++
		}
	}

	log.InfoContext(ctx, "follow counter recount finished", "users", total)

	videos := 0
	for offset := 0; ; offset += recountPageSize {
		ids, err := s.videoRepo.ListIDs(ctx, recountPageSize, offset)
		if err != nil {
			log.ErrorContext(ctx, "list video ids error", "offset", offset, "err", err)
			return
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if err := s.videoRepo.RecountVideoCounters(ctx, id); err != nil {
				log.ErrorContext(ctx, "recount video counters error", "videoID", id, "err", err)
				continue
			}
			videos++
		}
	}

	log.InfoContext(ctx, "video counter recount finished", "videos", videos)
}
