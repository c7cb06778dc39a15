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

// maxEngagementRate bounds the stored signal so a handful of early
// interactions on a barely-viewed video cannot dominate ranking.
const maxEngagementRate = 10.0

// EngagementRateJob refreshes the per-video engagement rate used as a
// ranking signal. Likes and saves weigh double, comments triple, all
// normalized by view count.
type EngagementRateJob struct {
	videoRepo repository.VideoRepo
}

func NewEngagementRateJob(videoRepo repository.VideoRepo) *EngagementRateJob {
	return &EngagementRateJob{
		videoRepo: videoRepo,
	}
}

func (s *EngagementRateJob) Run() {
	traceID := "job-engagement-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.EngagementRateLock, traceID, 30*time.Minute, 0)
	if err != nil || !locked {
		log.InfoContext(ctx, "engagement rate job skipped, lock held elsewhere")
		return
	}
	defer redis.UnLock(ctx, consts.EngagementRateLock, traceID)

	log.InfoContext(ctx, "start engagement rate refresh")

	total := 0
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
			video, err := s.videoRepo.GetVideo(ctx, id)
			if err != nil || video == nil {
				continue
			}

			views := video.Views
			if views < 1 {
				views = 1
			}
			rate := float64(video.LikeCount*2+video.CommentsCount*3+video.SavesCount*2) / float64(views)
			if rate > maxEngagementRate {
				rate = maxEngagementRate
			}

			if err := s.videoRepo.UpdateEngagementRate(ctx, id, rate); err != nil {
				log.ErrorContext(ctx, "update engagement rate error", "videoID", id, "err", err)
				continue
			}
			total++
		}
	}

	log.InfoContext(ctx, "engagement rate refresh finished", "videos", total)
}
