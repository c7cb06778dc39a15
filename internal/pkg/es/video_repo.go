package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type VideoRepo interface {
	IndexVideo(ctx context.Context, video *VideoES) error
	DeleteVideo(ctx context.Context, id uint64) error
	SearchVideos(ctx context.Context, keyword string, from, size int) ([]*VideoES, error)
}

type VideoRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewVideoRepo(client *elasticsearch.TypedClient) VideoRepo {
	return &VideoRepoImpl{client: client}
}

func (s *VideoRepoImpl) IndexVideo(ctx context.Context, video *VideoES) error {
	_, err := s.client.Index(VideoIndex).
		Id(strconv.FormatUint(video.ID, 10)).
		Document(video).
		Do(ctx)
	return err
}

func (s *VideoRepoImpl) DeleteVideo(ctx context.Context, id uint64) error {
	_, err := s.client.Delete(VideoIndex, strconv.FormatUint(id, 10)).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) && e.Status == NotFoundCode {
			return nil
		}
		return err
	}
	return nil
}

// SearchVideos runs a multi_match over title and tags, title weighted
// double, relevance-ordered.
func (s *VideoRepoImpl) SearchVideos(ctx context.Context, keyword string, from, size int) ([]*VideoES, error) {
	if from >= MaxSearchDepth {
		return []*VideoES{}, nil
	}

	res, err := s.client.Search().
		Index(VideoIndex).
		Request(&search.Request{
			Query: &types.Query{
				MultiMatch: &types.MultiMatchQuery{
					Query:  keyword,
					Fields: []string{"title^2", "tags"},
				},
			},
		}).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	videos := make([]*VideoES, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var v VideoES
		if err := json.Unmarshal(hit.Source_, &v); err != nil {
			continue
		}
		videos = append(videos, &v)
	}
	return videos, nil
}
