package service

import (
	"Clipstream/internal/api/config"
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/mongo"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret"},
	}
	os.Exit(m.Run())
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) RecountFollowCounters(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepo) ListUserIDs(ctx context.Context, limit, offset int) ([]uint64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) CreateFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) DeleteFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) CheckFollowExists(ctx context.Context, followerID, followingID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) GetFollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockFollowRepo) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockFollowRepo) GetMutualFollowIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockFollowRepo) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockFollowRepo) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) CreateVideo(ctx context.Context, video *model.Video, tags []*model.VideoTag) error {
	args := m.Called(ctx, video, tags)
	return args.Error(0)
}

func (m *MockVideoRepo) GetVideo(ctx context.Context, id uint64) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepo) GetVideoByIds(ctx context.Context, ids []uint64) ([]*model.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListExcluding(ctx context.Context, excludeIDs []uint64) ([]*model.Video, error) {
	args := m.Called(ctx, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListCandidates(ctx context.Context, categoryIDs []uint64, tags []string, excludeIDs []uint64) ([]*model.Video, error) {
	args := m.Called(ctx, categoryIDs, tags, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListByAuthors(ctx context.Context, authorIDs, excludeIDs []uint64, limit int) ([]*model.Video, error) {
	args := m.Called(ctx, authorIDs, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListNewest(ctx context.Context, limit int) ([]*model.Video, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListByCategory(ctx context.Context, categoryID uint64, limit, offset int) ([]*model.Video, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Video, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockVideoRepo) DeleteVideoCascade(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) UpdateEngagementRate(ctx context.Context, id uint64, rate float64) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

func (m *MockVideoRepo) RecountVideoCounters(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) ListIDs(ctx context.Context, limit, offset int) ([]uint64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) CreateLike(ctx context.Context, like *model.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) DeleteLike(ctx context.Context, userID uint64, targetType model.LikeTarget, targetID uint64) (bool, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) CheckLikeExists(ctx context.Context, userID uint64, targetType model.LikeTarget, targetID uint64) (bool, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) GetLikedVideoIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockEngagementRepo) CreateSave(ctx context.Context, save *model.VideoSave) (bool, error) {
	args := m.Called(ctx, save)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) DeleteSave(ctx context.Context, userID, videoID uint64) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) CheckSaveExists(ctx context.Context, userID, videoID uint64) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) GetSavedVideoIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockEngagementRepo) UpsertView(ctx context.Context, userID, videoID uint64) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockEngagementRepo) CreateNotInterested(ctx context.Context, userID, videoID uint64) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepo) GetView(ctx context.Context, userID, videoID uint64) (*model.VideoView, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoView), args.Error(1)
}

func (m *MockEngagementRepo) GetViewsByUser(ctx context.Context, userID uint64) ([]*model.VideoView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.VideoView), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.VideoComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) GetCommentByID(ctx context.Context, commentID uint64) (*model.VideoComment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoComment), args.Error(1)
}

func (m *MockCommentRepo) GetCommentsByVideoID(ctx context.Context, videoID uint64, limit, offset int) ([]*model.VideoComment, error) {
	args := m.Called(ctx, videoID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.VideoComment), args.Error(1)
}

func (m *MockCommentRepo) GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.VideoComment, error) {
	args := m.Called(ctx, parentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.VideoComment), args.Error(1)
}

func (m *MockCommentRepo) CountCommentsByVideoID(ctx context.Context, videoID uint64) (int64, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(int64), args.Error(1)
}

type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) CreateConversation(ctx context.Context, conv *model.Conversation, members []*model.ConversationMember) error {
	args := m.Called(ctx, conv, members)
	return args.Error(0)
}

func (m *MockConversationRepo) GetConversation(ctx context.Context, convID uint64) (*model.Conversation, error) {
	args := m.Called(ctx, convID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationRepo) GetConversationByParticipants(ctx context.Context, sortedKey string) (*model.Conversation, error) {
	args := m.Called(ctx, sortedKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationRepo) IsMember(ctx context.Context, convID uint64, userID uint64) (bool, error) {
	args := m.Called(ctx, convID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConversationRepo) GetMemberIDs(ctx context.Context, convID uint64) ([]uint64, error) {
	args := m.Called(ctx, convID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockConversationRepo) GetUserConversations(ctx context.Context, userID uint64) ([]*model.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Conversation), args.Error(1)
}

func (m *MockConversationRepo) TouchLastMessage(ctx context.Context, convID uint64) error {
	args := m.Called(ctx, convID)
	return args.Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) CreateNotification(ctx context.Context, n *mongo.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepo) GetLatestByUser(ctx context.Context, userID uint64, limit int64) ([]*mongo.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, userID uint64, notificationID string) (*mongo.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Notification), args.Error(1)
}

func (m *MockNotificationRepo) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) DeleteByVideo(ctx context.Context, videoID uint64) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) SaveMessage(ctx context.Context, msg *mongo.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) GetHistory(ctx context.Context, convID uint64, before time.Time, pageSize int) ([]*mongo.Message, error) {
	args := m.Called(ctx, convID, before, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Message), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyNewFollower(ctx context.Context, actorID, followedID uint64) error {
	args := m.Called(ctx, actorID, followedID)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyVideoLike(ctx context.Context, actorID uint64, video *model.Video) error {
	args := m.Called(ctx, actorID, video)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyCommentLike(ctx context.Context, actorID uint64, comment *model.VideoComment) error {
	args := m.Called(ctx, actorID, comment)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyComment(ctx context.Context, actorID uint64, video *model.Video, comment, parent *model.VideoComment) error {
	args := m.Called(ctx, actorID, video, comment, parent)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyUpload(ctx context.Context, uploaderID, followerID uint64, video *model.Video) error {
	args := m.Called(ctx, uploaderID, followerID, video)
	return args.Error(0)
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID uint64) ([]*mongo.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Notification), args.Error(1)
}

func (m *MockNotificationService) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID uint64, notificationID string) (*mongo.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Notification), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, payload interface{}) error {
	args := m.Called(ctx, channel, payload)
	return args.Error(0)
}
