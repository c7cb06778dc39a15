package dto

type CreateCommentDTO struct {
	VideoID  uint64 `json:"video_id" binding:"required"`
	ParentID uint64 `json:"parent_id"`
	Content  string `json:"content" binding:"required" validate:"min=1,max=1000"`
}
