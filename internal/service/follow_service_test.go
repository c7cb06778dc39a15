package service

import (
	"Clipstream/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFollow_CreatesEdgeAndNotifies(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	notifySvc := new(MockNotificationService)
	svc := NewFollowService(followRepo, userRepo, notifySvc)

	userRepo.On("GetUserById", mock.Anything, uint64(2)).Return(&model.User{ID: 2}, nil)
	followRepo.On("CreateFollow", mock.Anything, uint64(1), uint64(2)).Return(true, nil)
	notifySvc.On("NotifyNewFollower", mock.Anything, uint64(1), uint64(2)).Return(nil)

	created, err := svc.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.True(t, created)
	notifySvc.AssertExpectations(t)
}

func TestFollow_AlreadyFollowing_NoNotification(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	notifySvc := new(MockNotificationService)
	svc := NewFollowService(followRepo, userRepo, notifySvc)

	userRepo.On("GetUserById", mock.Anything, uint64(2)).Return(&model.User{ID: 2}, nil)
	followRepo.On("CreateFollow", mock.Anything, uint64(1), uint64(2)).Return(false, nil)

	created, err := svc.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.False(t, created)
	notifySvc.AssertNotCalled(t, "NotifyNewFollower", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_Self(t *testing.T) {
	svc := NewFollowService(new(MockFollowRepo), new(MockUserRepo), new(MockNotificationService))

	_, err := svc.Follow(context.Background(), 5, 5)

	assert.ErrorIs(t, err, ErrFollowSelf)
}

func TestFollow_TargetMissing(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	svc := NewFollowService(followRepo, userRepo, new(MockNotificationService))

	userRepo.On("GetUserById", mock.Anything, uint64(404)).Return(nil, nil)

	_, err := svc.Follow(context.Background(), 1, 404)

	assert.ErrorIs(t, err, ErrUserNotFound)
	followRepo.AssertNotCalled(t, "CreateFollow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_NotificationFailureDoesNotFailFollow(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	notifySvc := new(MockNotificationService)
	svc := NewFollowService(followRepo, userRepo, notifySvc)

	userRepo.On("GetUserById", mock.Anything, uint64(2)).Return(&model.User{ID: 2}, nil)
	followRepo.On("CreateFollow", mock.Anything, uint64(1), uint64(2)).Return(true, nil)
	notifySvc.On("NotifyNewFollower", mock.Anything, uint64(1), uint64(2)).
		Return(assert.AnError)

	created, err := svc.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.True(t, created)
}

func TestUnfollow_Idempotent(t *testing.T) {
	followRepo := new(MockFollowRepo)
	svc := NewFollowService(followRepo, new(MockUserRepo), new(MockNotificationService))

	followRepo.On("DeleteFollow", mock.Anything, uint64(1), uint64(2)).Return(false, nil).Once()

	removed, err := svc.Unfollow(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestIsFollowing_AnonymousViewer(t *testing.T) {
	followRepo := new(MockFollowRepo)
	svc := NewFollowService(followRepo, new(MockUserRepo), new(MockNotificationService))

	following, err := svc.IsFollowing(context.Background(), 0, 2)

	assert.NoError(t, err)
	assert.False(t, following)
	followRepo.AssertNotCalled(t, "CheckFollowExists", mock.Anything, mock.Anything, mock.Anything)
}
