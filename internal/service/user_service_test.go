package service

import (
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).Return(nil)

	user, token, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint64(7), user.ID)
	assert.Equal(t, "alice", user.Username)
	// The stored password must be a hash, never the plaintext.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, security.CheckPasswordHash("secret123", user.Password))
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&model.User{ID: 1, Email: "alice@example.com"}, nil)

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret123")

	assert.ErrorIs(t, err, ErrUserEmailExist)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&model.User{ID: 2, Username: "alice"}, nil)

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret123")

	assert.ErrorIs(t, err, ErrUserUsernameExist)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewUserService(new(MockUserRepo))

	_, _, err := svc.Register(context.Background(), "", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrMissingLoginCredentials)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	hashed, err := security.HashPassword("secret123")
	assert.NoError(t, err)
	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&model.User{ID: 7, Email: "alice@example.com", Password: hashed}, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint64(7), user.ID)
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	hashed, err := security.HashPassword("secret123")
	assert.NoError(t, err)
	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&model.User{ID: 7, Password: hashed}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_NotFound(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetUserById", mock.Anything, uint64(99)).Return(nil, nil)

	_, err := svc.GetProfile(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
