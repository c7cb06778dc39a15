package dto

type CreateConversationDTO struct {
	PeerID uint64 `json:"peer_id" binding:"required"`
}

type SendMessageDTO struct {
	ConversationID uint64 `json:"conversation_id" binding:"required"`
	Content        string `json:"content" binding:"required" validate:"min=1,max=4000"`
	ContentType    string `json:"content_type"` // text, image, file; defaults to text
}
