package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/mongo"
	"Clipstream/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"
)

type MessageService interface {
	GetOrCreateDirectConversation(ctx context.Context, userID, peerID uint64) (*model.Conversation, error)
	SendMessage(ctx context.Context, userID, convID uint64, content string, contentType mongo.MessageContentType) (*mongo.Message, error)
	GetMessages(ctx context.Context, userID, convID uint64, before time.Time, pageSize int) ([]*mongo.Message, error)
	ListConversations(ctx context.Context, userID uint64) ([]*model.Conversation, error)
}

type messageServiceImpl struct {
	conversationRepo repository.ConversationRepo
	messageRepo      mongo.MessageRepo
	userRepo         repository.UserRepo
	publisher        Publisher
}

func NewMessageService(
	conversationRepo repository.ConversationRepo,
	messageRepo mongo.MessageRepo,
	userRepo repository.UserRepo,
	publisher Publisher,
) MessageService {
	return &messageServiceImpl{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

// participantKey builds the unique lookup key for a direct conversation.
func participantKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// GetOrCreateDirectConversation returns the existing direct conversation
// between the two users or creates one. A direct conversation always has
// exactly two distinct participants.
func (s *messageServiceImpl) GetOrCreateDirectConversation(ctx context.Context, userID, peerID uint64) (*model.Conversation, error) {
	if userID == peerID {
		return nil, ErrConversationParticipants
	}
	peer, err := s.userRepo.GetUserById(ctx, peerID)
	if err != nil {
		return nil, err
	}
	if peer == nil {
		return nil, ErrUserNotFound
	}

	key := participantKey(userID, peerID)
	conv, err := s.conversationRepo.GetConversationByParticipants(ctx, key)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	conv = &model.Conversation{
		Type:               model.ConversationTypeDirect,
		SortedParticipants: key,
		LastMessageAt:      time.Now(),
	}
	members := []*model.ConversationMember{
		{UserID: userID},
		{UserID: peerID},
	}
	if err := s.conversationRepo.CreateConversation(ctx, conv, members); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *messageServiceImpl) SendMessage(ctx context.Context, userID, convID uint64, content string, contentType mongo.MessageContentType) (*mongo.Message, error) {
	if content == "" {
		return nil, ErrParamInvalid
	}
	conv, err := s.conversationRepo.GetConversation(ctx, convID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	member, err := s.conversationRepo.IsMember(ctx, convID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrConversationNotMember
	}

	msg := &mongo.Message{
		ConversationID: convID,
		SenderID:       userID,
		Content:        content,
		ContentType:    contentType,
		CreatedAt:      time.Now(),
	}
	if err := s.messageRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.conversationRepo.TouchLastMessage(ctx, convID); err != nil {
		log.ErrorContext(ctx, "conversation touch failed", "convID", convID, "err", err)
	}

	channel := consts.MessageChannelPrefix + strconv.FormatUint(convID, 10)
	if err := s.publisher.Publish(ctx, channel, msg); err != nil {
		log.ErrorContext(ctx, "message publish failed", "convID", convID, "err", err)
	}
	return msg, nil
}

func (s *messageServiceImpl) GetMessages(ctx context.Context, userID, convID uint64, before time.Time, pageSize int) ([]*mongo.Message, error) {
	member, err := s.conversationRepo.IsMember(ctx, convID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrConversationNotMember
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.messageRepo.GetHistory(ctx, convID, before, pageSize)
}

func (s *messageServiceImpl) ListConversations(ctx context.Context, userID uint64) ([]*model.Conversation, error) {
	return s.conversationRepo.GetUserConversations(ctx, userID)
}
