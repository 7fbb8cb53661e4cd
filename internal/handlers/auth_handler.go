package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/services"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/responses"
)

// UserService is what the auth handlers need from the user service.
type UserService interface {
	Login(ctx context.Context, username, password string, rememberMe bool) (string, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

type AuthHandler struct {
	users UserService
}

func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Login verifies credentials and returns a bearer token. Unknown user and
// wrong password produce the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "輸入格式錯誤", bindingDetails(err)...)
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.Error(c, http.StatusBadRequest, "帳號或密碼錯誤")
			return
		}
		logger.Log.Error().Err(err).Msg("Login failed")
		responses.Error(c, http.StatusInternalServerError, "系統錯誤")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": req.Username,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword re-proves the current password before storing a new hash.
// Previously issued tokens stay valid until expiry.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	username := c.GetString("username")

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "新密碼至少需 6 碼", bindingDetails(err)...)
		return
	}

	err := h.users.ChangePassword(c.Request.Context(), username, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		responses.Error(c, http.StatusNotFound, "使用者不存在")
	case errors.Is(err, services.ErrWrongPassword):
		responses.Error(c, http.StatusBadRequest, "舊密碼錯誤")
	case err != nil:
		logger.Log.Error().Err(err).Str("username", username).Msg("Password change failed")
		responses.Error(c, http.StatusInternalServerError, "更新失敗")
	default:
		responses.Message(c, http.StatusOK, "密碼更新成功")
	}
}
