package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/repository"
	"context"
	"sort"
)

// Ranking weights. A view is worth half a point, a like two, and a
// category hit adds a flat bonus on the personalized path.
const (
	viewWeight    = 0.5
	likeWeight    = 2.0
	categoryBonus = 10.0
)

// ReplayThreshold marks high-affinity videos: a pair watched more than
// this many times counts as favorited alongside explicit likes.
const ReplayThreshold = 3

type RecommendService interface {
	Recommend(ctx context.Context, userID uint64, limit int) ([]*model.Video, error)
}

type recommendServiceImpl struct {
	videoRepo      repository.VideoRepo
	engagementRepo repository.EngagementRepo
}

func NewRecommendService(
	videoRepo repository.VideoRepo,
	engagementRepo repository.EngagementRepo,
) RecommendService {
	return &recommendServiceImpl{
		videoRepo:      videoRepo,
		engagementRepo: engagementRepo,
	}
}

// history splits the viewer's view rows by what they mean: a zero counter
// is an explicit not-interested marker, a positive one a watch, and
// anything past ReplayThreshold a strong affinity signal.
type history struct {
	viewed        []uint64
	notInterested []uint64
	replayed      []uint64
}

func splitHistory(views []*model.VideoView) history {
	var h history
	for _, v := range views {
		switch {
		case v.ViewCount == 0:
			h.notInterested = append(h.notInterested, v.VideoID)
		default:
			h.viewed = append(h.viewed, v.VideoID)
			if v.ViewCount > ReplayThreshold {
				h.replayed = append(h.replayed, v.VideoID)
			}
		}
	}
	return h
}

func popularityScore(v *model.Video) float64 {
	return float64(v.Views)*viewWeight + float64(v.LikeCount)*likeWeight
}

type scoredVideo struct {
	video *model.Video
	score float64
}

// sortScored orders by score descending with a deterministic tie-break on
// creation time, then ID.
func sortScored(list []scoredVideo) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		if !list[i].video.CreatedAt.Equal(list[j].video.CreatedAt) {
			return list[i].video.CreatedAt.After(list[j].video.CreatedAt)
		}
		return list[i].video.ID > list[j].video.ID
	})
}

func unionIDs(sets ...[]uint64) []uint64 {
	seen := make(map[uint64]struct{})
	var out []uint64
	for _, set := range sets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Recommend produces an ordered list of at most limit videos for the
// viewer: personalized when interaction history exists, popularity-ranked
// otherwise, always excluding not-interested videos and padded best-effort
// from the remaining catalog when candidates run short.
func (s *recommendServiceImpl) Recommend(ctx context.Context, userID uint64, limit int) ([]*model.Video, error) {
	if limit <= 0 {
		return []*model.Video{}, nil
	}

	views, err := s.engagementRepo.GetViewsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	h := splitHistory(views)

	liked, err := s.engagementRepo.GetLikedVideoIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	favorited := unionIDs(liked, h.replayed)

	if len(h.viewed) == 0 && len(favorited) == 0 {
		return s.coldStart(ctx, h.notInterested, limit)
	}
	return s.personalized(ctx, h, favorited, limit)
}

// coldStart ranks the whole catalog (minus not-interested) by popularity.
func (s *recommendServiceImpl) coldStart(ctx context.Context, notInterested []uint64, limit int) ([]*model.Video, error) {
	videos, err := s.videoRepo.ListExcluding(ctx, notInterested)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredVideo, 0, len(videos))
	for _, v := range videos {
		scored = append(scored, scoredVideo{video: v, score: popularityScore(v)})
	}
	sortScored(scored)

	result := make([]*model.Video, 0, limit)
	for _, sv := range scored {
		if len(result) == limit {
			break
		}
		result = append(result, sv.video)
	}
	return result, nil
}

func (s *recommendServiceImpl) personalized(ctx context.Context, h history, favorited []uint64, limit int) ([]*model.Video, error) {
	profileIDs := unionIDs(h.viewed, favorited)
	profileVideos, err := s.videoRepo.GetVideoByIds(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	categorySet := make(map[uint64]struct{})
	tagSet := make(map[string]struct{})
	for _, v := range profileVideos {
		if v.CategoryID != 0 {
			categorySet[v.CategoryID] = struct{}{}
		}
		for _, t := range v.Tags {
			tagSet[t.Tag] = struct{}{}
		}
	}
	categories := make([]uint64, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}

	excluded := unionIDs(h.viewed, favorited, h.notInterested)

	candidates, err := s.videoRepo.ListCandidates(ctx, categories, tags, excluded)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredVideo, 0, len(candidates))
	for _, v := range candidates {
		score := popularityScore(v)
		if _, ok := categorySet[v.CategoryID]; ok {
			score += categoryBonus
		}
		scored = append(scored, scoredVideo{video: v, score: score})
	}
	sortScored(scored)

	result := make([]*model.Video, 0, limit)
	for _, sv := range scored {
		if len(result) == limit {
			break
		}
		result = append(result, sv.video)
	}

	if len(result) < limit {
		backfilled, err := s.backfill(ctx, result, excluded, limit-len(result))
		if err != nil {
			return nil, err
		}
		result = append(result, backfilled...)
	}
	return result, nil
}

// backfill pads an under-filled result from the rest of the catalog by
// popularity, never repeating a selected or excluded video. Best-effort:
// an exhausted catalog still under-fills.
func (s *recommendServiceImpl) backfill(ctx context.Context, selected []*model.Video, excluded []uint64, need int) ([]*model.Video, error) {
	selectedIDs := make([]uint64, 0, len(selected))
	for _, v := range selected {
		selectedIDs = append(selectedIDs, v.ID)
	}

	extra, err := s.videoRepo.ListExcluding(ctx, unionIDs(excluded, selectedIDs))
	if err != nil {
		return nil, err
	}

	scored := make([]scoredVideo, 0, len(extra))
	for _, v := range extra {
		scored = append(scored, scoredVideo{video: v, score: popularityScore(v)})
	}
	sortScored(scored)

	result := make([]*model.Video, 0, need)
	for _, sv := range scored {
		if len(result) == need {
			break
		}
		result = append(result, sv.video)
	}
	return result, nil
}
