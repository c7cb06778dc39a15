package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/pkg/util"
	"Clipstream/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func toProfileDTO(user *model.User) dto.UserProfileDTO {
	var profile dto.UserProfileDTO
	_ = copier.Copy(&profile, user)
	return profile
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, token, err := s.userSvc.Register(c, req.Username, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AuthResultDTO{
		Token: token,
		User:  toProfileDTO(user),
	})
}

func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, token, err := s.userSvc.Login(c, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AuthResultDTO{
		Token: token,
		User:  toProfileDTO(user),
	})
}

func (s *UserHandler) GetMe(c *gin.Context) {
	userId := c.GetUint64("user_id")

	user, err := s.userSvc.GetProfile(c, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toProfileDTO(user))
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	targetId, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	user, err := s.userSvc.GetProfile(c, targetId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toProfileDTO(user))
}
