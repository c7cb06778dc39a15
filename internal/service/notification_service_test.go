package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/mongo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newNotificationFixture() (*MockNotificationRepo, *MockUserRepo, *MockPublisher, NotificationService) {
	notificationRepo := new(MockNotificationRepo)
	userRepo := new(MockUserRepo)
	publisher := new(MockPublisher)
	svc := NewNotificationService(notificationRepo, userRepo, publisher)
	return notificationRepo, userRepo, publisher, svc
}

func TestNotifyVideoLike_SuppressedForOwnVideo(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture()

	err := svc.NotifyVideoLike(context.Background(), 2, &model.Video{ID: 10, UserID: 2})

	assert.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotifyVideoLike_SingleLiker(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *mongo.Notification) bool {
		return n.Type == mongo.NotifyVideoLike &&
			n.UserID == 2 && n.ActorID == 1 && n.VideoID == 10 &&
			n.Content == "alice liked your video"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, "notify:user:2", mock.Anything).Return(nil)

	err := svc.NotifyVideoLike(context.Background(), 1, &model.Video{ID: 10, UserID: 2, LikeCount: 1})

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestNotifyVideoLike_AggregatesOthers(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *mongo.Notification) bool {
		return n.Content == "alice and 4 others liked your video"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := svc.NotifyVideoLike(context.Background(), 1, &model.Video{ID: 10, UserID: 2, LikeCount: 5})

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestNotifyNewFollower_IncludesFollowerCount(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	userRepo.On("GetUserById", mock.Anything, uint64(2)).Return(&model.User{ID: 2, FollowerCount: 42}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *mongo.Notification) bool {
		return n.Type == mongo.NotifyNewFollower &&
			n.Content == "alice started following you. You now have 42 followers"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := svc.NotifyNewFollower(context.Background(), 1, 2)

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestNotifyComment_ReplyGoesToParentAuthor(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	video := &model.Video{ID: 10, UserID: 2, CommentsCount: 9}
	parent := &model.VideoComment{ID: 100, VideoID: 10, UserID: 3}
	comment := &model.VideoComment{ID: 101, VideoID: 10, UserID: 1, ParentID: 100}
	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *mongo.Notification) bool {
		// The reply notifies the parent's author, never the video owner,
		// and carries no "and N others" suffix.
		return n.Type == mongo.NotifyCommentReply &&
			n.UserID == 3 && n.CommentID == 101 &&
			n.Content == "alice replied to your comment"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, "notify:user:3", mock.Anything).Return(nil)

	err := svc.NotifyComment(context.Background(), 1, video, comment, parent)

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestNotifyComment_SelfReplySuppressed(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture()

	video := &model.Video{ID: 10, UserID: 2}
	parent := &model.VideoComment{ID: 100, VideoID: 10, UserID: 1}
	comment := &model.VideoComment{ID: 101, VideoID: 10, UserID: 1, ParentID: 100}

	err := svc.NotifyComment(context.Background(), 1, video, comment, parent)

	assert.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotifyComment_TopLevelAggregates(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	video := &model.Video{ID: 10, UserID: 2, CommentsCount: 3}
	comment := &model.VideoComment{ID: 101, VideoID: 10, UserID: 1}
	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *mongo.Notification) bool {
		return n.Type == mongo.NotifyVideoComment &&
			n.UserID == 2 &&
			n.Content == "alice and 2 others commented on your video"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := svc.NotifyComment(context.Background(), 1, video, comment, nil)

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestNotifyUpload_SkipsUploaderThemselves(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture()

	err := svc.NotifyUpload(context.Background(), 1, 1, &model.Video{ID: 10, UserID: 1})

	assert.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotifyUpload_IncludesTitle(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *mongo.Notification) bool {
		return n.Type == mongo.NotifyFollowedUserUpload &&
			n.UserID == 5 &&
			n.Content == "alice uploaded a new video: Morning run"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, "notify:user:5", mock.Anything).Return(nil)

	err := svc.NotifyUpload(context.Background(), 1, 5, &model.Video{ID: 10, UserID: 1, Title: "Morning run"})

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestNotify_PublishFailureSwallowed(t *testing.T) {
	notificationRepo, userRepo, publisher, svc := newNotificationFixture()

	userRepo.On("GetUserById", mock.Anything, uint64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	notificationRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.NotifyVideoLike(context.Background(), 1, &model.Video{ID: 10, UserID: 2, LikeCount: 1})

	assert.NoError(t, err)
}

func TestMarkRead_MissingNotification(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture()

	notificationRepo.On("MarkAsRead", mock.Anything, uint64(1), "deadbeef").
		Return(nil, mongo.ErrNotificationMissing)

	_, err := svc.MarkRead(context.Background(), 1, "deadbeef")

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkRead_Success(t *testing.T) {
	notificationRepo, _, _, svc := newNotificationFixture()

	notificationRepo.On("MarkAsRead", mock.Anything, uint64(1), "deadbeef").
		Return(&mongo.Notification{Read: true, UserID: 1}, nil)

	n, err := svc.MarkRead(context.Background(), 1, "deadbeef")

	assert.NoError(t, err)
	assert.True(t, n.Read)
}
