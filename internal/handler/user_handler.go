package handler

import (
	"travelmate/internal/service"
	"travelmate/pkg/jwt"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register creates an account and returns a token.
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		Username        string `json:"username" binding:"required"`
		Email           string `json:"email" binding:"required"`
		FirstName       string `json:"first_name" binding:"required"`
		LastName        string `json:"last_name" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.service.Register(r.Username, r.Email, r.FirstName, r.LastName, r.Password, r.ConfirmPassword)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.SuccessWithMessage(c, "registered", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Login authenticates by username or email.
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.service.Authenticate(r.Identifier, r.Password)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.SuccessWithMessage(c, "logged in", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// GetProfile returns the authenticated user's account.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// Search finds users by username prefix for the add-friend flow.
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.service.Search(c.Query("q"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	infos := make([]*response.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, response.FilterUserInfo(u))
	}
	response.Success(c, infos)
}
