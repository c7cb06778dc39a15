package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/es"
	"Clipstream/internal/pkg/minio"
	"Clipstream/internal/pkg/mongo"
	"Clipstream/internal/repository"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadEvent is the Kafka payload that decouples follower fan-out from
// the upload request itself.
type UploadEvent struct {
	VideoID    uint64 `json:"videoId"`
	UploaderID uint64 `json:"uploaderId"`
	Title      string `json:"title"`
}

// UploadEventProducer hands upload events to the fan-out consumer group.
type UploadEventProducer interface {
	PublishUpload(ctx context.Context, event *UploadEvent) error
}

// MediaFile is one multipart part of an upload request.
type MediaFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type UploadVideoInput struct {
	Title      string
	Duration   int
	CategoryID uint64
	Tags       []string
	Video      MediaFile
	Thumbnail  *MediaFile
}

type VideoService interface {
	Upload(ctx context.Context, userID uint64, input *UploadVideoInput) (*model.Video, error)
	Delete(ctx context.Context, userID, videoID uint64) error
	GetVideo(ctx context.Context, videoID uint64) (*model.Video, error)
	GetUserVideos(ctx context.Context, userID uint64, page, pageSize int) ([]*model.Video, error)
	Search(ctx context.Context, keyword string, page, pageSize int) ([]*model.Video, error)
}

type videoServiceImpl struct {
	videoRepo        repository.VideoRepo
	esRepo           es.VideoRepo
	notificationRepo mongo.NotificationRepo
	producer         UploadEventProducer
}

func NewVideoService(
	videoRepo repository.VideoRepo,
	esRepo es.VideoRepo,
	notificationRepo mongo.NotificationRepo,
	producer UploadEventProducer,
) VideoService {
	return &videoServiceImpl{
		videoRepo:        videoRepo,
		esRepo:           esRepo,
		notificationRepo: notificationRepo,
		producer:         producer,
	}
}

func objectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(filename))
}

// Upload stores the media objects, persists the video row, indexes it for
// search, and emits the fan-out event. A storage failure mid-way triggers
// best-effort cleanup of objects already uploaded before the error is
// returned.
func (s *videoServiceImpl) Upload(ctx context.Context, userID uint64, input *UploadVideoInput) (*model.Video, error) {
	if input.Title == "" {
		return nil, ErrParamInvalid
	}
	if !strings.HasPrefix(input.Video.ContentType, consts.MimePrefixVideo) {
		return nil, ErrFileNotSupported
	}
	if input.Thumbnail != nil && !strings.HasPrefix(input.Thumbnail.ContentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	videoKey, err := minio.UploadFile(ctx, objectKey("videos", input.Video.Filename),
		input.Video.Reader, input.Video.Size, input.Video.ContentType)
	if err != nil {
		return nil, ErrUploadFailed
	}

	var thumbnailURL string
	if input.Thumbnail != nil {
		thumbKey, err := minio.UploadFile(ctx, objectKey("thumbnails", input.Thumbnail.Filename),
			input.Thumbnail.Reader, input.Thumbnail.Size, input.Thumbnail.ContentType)
		if err != nil {
			s.cleanupObjects(videoKey)
			return nil, ErrUploadFailed
		}
		thumbnailURL = thumbKey
	}

	video := &model.Video{
		UserID:       userID,
		Title:        input.Title,
		VideoKey:     videoKey,
		ThumbnailURL: thumbnailURL,
		Duration:     input.Duration,
		CategoryID:   input.CategoryID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	tags := make([]*model.VideoTag, 0, len(input.Tags))
	for _, t := range input.Tags {
		if t == "" {
			continue
		}
		tags = append(tags, &model.VideoTag{Tag: t})
	}

	if err := s.videoRepo.CreateVideo(ctx, video, tags); err != nil {
		s.cleanupObjects(videoKey, thumbnailURL)
		return nil, err
	}

	if err := s.esRepo.IndexVideo(ctx, toVideoES(video, input.Tags)); err != nil {
		log.ErrorContext(ctx, "video index failed", "videoID", video.ID, "err", err)
	}

	if err := s.producer.PublishUpload(ctx, &UploadEvent{
		VideoID:    video.ID,
		UploaderID: userID,
		Title:      video.Title,
	}); err != nil {
		log.ErrorContext(ctx, "upload event publish failed", "videoID", video.ID, "err", err)
	}

	return video, nil
}

// cleanupObjects removes already-uploaded media after a failed upload.
func (s *videoServiceImpl) cleanupObjects(keys ...string) {
	go func() {
		bgCtx := context.Background()
		for _, key := range keys {
			if key == "" {
				continue
			}
			if err := minio.DeleteFile(bgCtx, key); err != nil {
				log.Error("upload cleanup failed", "key", key, "err", err)
			}
		}
	}()
}

// Delete removes the video, its engagement rows, search document,
// notifications, and stored media. Only the owner may delete.
func (s *videoServiceImpl) Delete(ctx context.Context, userID, videoID uint64) error {
	video, err := s.videoRepo.GetVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}
	if video.UserID != userID {
		return ErrPermissionDenied
	}

	if err := s.videoRepo.DeleteVideoCascade(ctx, videoID); err != nil {
		return err
	}

	if err := s.esRepo.DeleteVideo(ctx, videoID); err != nil {
		log.ErrorContext(ctx, "video index delete failed", "videoID", videoID, "err", err)
	}
	if err := s.notificationRepo.DeleteByVideo(ctx, videoID); err != nil {
		log.ErrorContext(ctx, "video notifications delete failed", "videoID", videoID, "err", err)
	}
	s.cleanupObjects(video.VideoKey, video.ThumbnailURL)

	return nil
}

func (s *videoServiceImpl) GetVideo(ctx context.Context, videoID uint64) (*model.Video, error) {
	video, err := s.videoRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

func (s *videoServiceImpl) GetUserVideos(ctx context.Context, userID uint64, page, pageSize int) ([]*model.Video, error) {
	if page < 1 {
		page = 1
	}
	return s.videoRepo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
}

// Search resolves matching IDs from the search index, then loads full
// rows from the database preserving relevance order.
func (s *videoServiceImpl) Search(ctx context.Context, keyword string, page, pageSize int) ([]*model.Video, error) {
	if keyword == "" {
		return []*model.Video{}, nil
	}
	if page < 1 {
		page = 1
	}

	docs, err := s.esRepo.SearchVideos(ctx, keyword, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return []*model.Video{}, nil
	}

	ids := make([]uint64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	videos, err := s.videoRepo.GetVideoByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*model.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

func toVideoES(video *model.Video, tags []string) *es.VideoES {
	return &es.VideoES{
		ID:         video.ID,
		UserID:     video.UserID,
		Title:      video.Title,
		Tags:       tags,
		CategoryID: video.CategoryID,
		Views:      video.Views,
		LikeCount:  video.LikeCount,
		CreatedAt:  video.CreatedAt,
	}
}
