package service

import (
	"Clipstream/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommentFixture() (*MockCommentRepo, *MockVideoRepo, *MockNotificationService, *MockPublisher, CommentService) {
	commentRepo := new(MockCommentRepo)
	videoRepo := new(MockVideoRepo)
	notifySvc := new(MockNotificationService)
	publisher := new(MockPublisher)
	svc := NewCommentService(commentRepo, videoRepo, notifySvc, publisher)
	return commentRepo, videoRepo, notifySvc, publisher, svc
}

func TestAddComment_TopLevel(t *testing.T) {
	commentRepo, videoRepo, notifySvc, publisher, svc := newCommentFixture()

	video := &model.Video{ID: 10, UserID: 2}
	videoRepo.On("GetVideo", mock.Anything, uint64(10)).Return(video, nil)
	commentRepo.On("CreateComment", mock.Anything, mock.AnythingOfType("*model.VideoComment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.VideoComment).ID = 100
		}).Return(nil)
	notifySvc.On("NotifyComment", mock.Anything, uint64(1), video, mock.Anything, (*model.VideoComment)(nil)).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.AddComment(context.Background(), 1, 10, "nice video", 0)

	assert.NoError(t, err)
	assert.Equal(t, uint64(0), comment.ParentID)
	assert.Equal(t, 0, comment.Level)
	notifySvc.AssertExpectations(t)
}

func TestAddComment_ReplyIncrementsLevel(t *testing.T) {
	commentRepo, videoRepo, notifySvc, publisher, svc := newCommentFixture()

	video := &model.Video{ID: 10, UserID: 2}
	parent := &model.VideoComment{ID: 100, VideoID: 10, UserID: 3, ParentID: 0, Level: 0}
	videoRepo.On("GetVideo", mock.Anything, uint64(10)).Return(video, nil)
	commentRepo.On("GetCommentByID", mock.Anything, uint64(100)).Return(parent, nil)
	commentRepo.On("CreateComment", mock.Anything, mock.Anything).Return(nil)
	notifySvc.On("NotifyComment", mock.Anything, uint64(1), video, mock.Anything, parent).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.AddComment(context.Background(), 1, 10, "agreed", 100)

	assert.NoError(t, err)
	assert.Equal(t, uint64(100), comment.ParentID)
	assert.Equal(t, 1, comment.Level)
}

func TestAddComment_DepthClampReparentsToGrandparent(t *testing.T) {
	commentRepo, videoRepo, notifySvc, publisher, svc := newCommentFixture()

	video := &model.Video{ID: 10, UserID: 2}
	// Parent already sits at the deepest visible level.
	parent := &model.VideoComment{ID: 300, VideoID: 10, UserID: 3, ParentID: 200, Level: 2}
	videoRepo.On("GetVideo", mock.Anything, uint64(10)).Return(video, nil)
	commentRepo.On("GetCommentByID", mock.Anything, uint64(300)).Return(parent, nil)
	commentRepo.On("CreateComment", mock.Anything, mock.Anything).Return(nil)
	notifySvc.On("NotifyComment", mock.Anything, uint64(1), video, mock.Anything, parent).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.AddComment(context.Background(), 1, 10, "deep reply", 300)

	assert.NoError(t, err)
	assert.Equal(t, uint64(200), comment.ParentID)
	assert.Equal(t, MaxCommentDepth-1, comment.Level)
}

func TestAddComment_ParentFromAnotherVideo(t *testing.T) {
	commentRepo, videoRepo, _, _, svc := newCommentFixture()

	videoRepo.On("GetVideo", mock.Anything, uint64(10)).Return(&model.Video{ID: 10}, nil)
	commentRepo.On("GetCommentByID", mock.Anything, uint64(100)).
		Return(&model.VideoComment{ID: 100, VideoID: 99}, nil)

	_, err := svc.AddComment(context.Background(), 1, 10, "misplaced", 100)

	assert.ErrorIs(t, err, ErrCommentNotFound)
	commentRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestAddComment_VideoMissing(t *testing.T) {
	_, videoRepo, _, _, svc := newCommentFixture()

	videoRepo.On("GetVideo", mock.Anything, uint64(404)).Return(nil, nil)

	_, err := svc.AddComment(context.Background(), 1, 404, "hello", 0)

	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestAddComment_PublishFailureStillSucceeds(t *testing.T) {
	commentRepo, videoRepo, notifySvc, publisher, svc := newCommentFixture()

	video := &model.Video{ID: 10, UserID: 2}
	videoRepo.On("GetVideo", mock.Anything, uint64(10)).Return(video, nil)
	commentRepo.On("CreateComment", mock.Anything, mock.Anything).Return(nil)
	notifySvc.On("NotifyComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	comment, err := svc.AddComment(context.Background(), 1, 10, "still works", 0)

	assert.NoError(t, err)
	assert.NotNil(t, comment)
}
