package dto

// UploadVideoDTO carries the multipart form fields next to the media
// parts themselves.
type UploadVideoDTO struct {
	Title      string `form:"title" binding:"required" validate:"min=1,max=255"`
	Duration   int    `form:"duration"`
	CategoryID uint64 `form:"category_id"`
	Tags       string `form:"tags"` // comma separated
}

// VideoStateDTO reports the requesting user's relation to one video.
type VideoStateDTO struct {
	VideoID uint64 `json:"videoId"`
	IsLiked bool   `json:"isLiked"`
	IsSaved bool   `json:"isSaved"`
}
