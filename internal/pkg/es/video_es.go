package es

import "time"

// VideoES is the search document for a video.
type VideoES struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Title      string    `json:"title"`
	Tags       []string  `json:"tags"`
	CategoryID uint64    `json:"category_id"`
	Views      int       `json:"views"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
}
