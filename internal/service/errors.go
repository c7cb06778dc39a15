package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid             = errors.New("invalid parameter")
	ErrUserNotFound             = errors.New("user not found")
	ErrUserEmailExist           = errors.New("email already registered")
	ErrUserUsernameExist        = errors.New("username already taken")
	ErrPasswordIncorrect        = errors.New("incorrect password")
	ErrMissingLoginCredentials  = errors.New("missing login credentials")
	ErrTokenInvalid             = errors.New("token invalid or expired")
	ErrFollowSelf               = errors.New("cannot follow yourself")
	ErrVideoNotFound            = errors.New("video not found")
	ErrCommentNotFound          = errors.New("comment not found")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrConversationNotFound     = errors.New("conversation not found")
	ErrConversationParticipants = errors.New("direct conversation requires exactly two participants")
	ErrConversationNotMember    = errors.New("not a member of this conversation")
	ErrPermissionDenied         = errors.New("permission denied")
	ErrFileNotSupported         = errors.New("unsupported file type")
	ErrUploadFailed             = errors.New("media upload failed")
	UnExpectedError             = errors.New("internal error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:             BadRequest,
	ErrUserNotFound:             NotFound,
	ErrUserEmailExist:           BadRequest,
	ErrUserUsernameExist:        BadRequest,
	ErrPasswordIncorrect:        Unauthorized,
	ErrMissingLoginCredentials:  Unauthorized,
	ErrTokenInvalid:             Unauthorized,
	ErrFollowSelf:               BadRequest,
	ErrVideoNotFound:            NotFound,
	ErrCommentNotFound:          NotFound,
	ErrCategoryNotFound:         NotFound,
	ErrNotificationNotFound:     NotFound,
	ErrConversationNotFound:     NotFound,
	ErrConversationParticipants: BadRequest,
	ErrConversationNotMember:    Forbidden,
	ErrPermissionDenied:         Forbidden,
	ErrFileNotSupported:         BadRequest,
	ErrUploadFailed:             InternalServerError,
	UnExpectedError:             InternalServerError,
}
