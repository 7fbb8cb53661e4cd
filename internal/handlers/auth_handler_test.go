package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/services"
)

type fakeUserService struct {
	token       string
	loginErr    error
	changeErr   error
	gotUsername string
	gotRemember bool
}

func (f *fakeUserService) Login(ctx context.Context, username, password string, rememberMe bool) (string, error) {
	f.gotUsername = username
	f.gotRemember = rememberMe
	return f.token, f.loginErr
}

func (f *fakeUserService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	f.gotUsername = username
	return f.changeErr
}

func authEngine(svc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/login", h.Login)
	r.PUT("/api/user/password", func(c *gin.Context) {
		c.Set("username", "alice")
		h.ChangePassword(c)
	})
	return r
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeUserService
		wantCode   int
		wantSubstr string
	}{
		{
			name:       "success",
			body:       `{"username":"alice","password":"pw","rememberMe":true}`,
			svc:        &fakeUserService{token: "tok123"},
			wantCode:   http.StatusOK,
			wantSubstr: `"token":"tok123"`,
		},
		{
			name:       "invalid credentials",
			body:       `{"username":"alice","password":"bad"}`,
			svc:        &fakeUserService{loginErr: services.ErrInvalidCredentials},
			wantCode:   http.StatusBadRequest,
			wantSubstr: "帳號或密碼錯誤",
		},
		{
			name:       "missing fields",
			body:       `{"username":"alice"}`,
			svc:        &fakeUserService{},
			wantCode:   http.StatusBadRequest,
			wantSubstr: "輸入格式錯誤",
		},
		{
			name:       "store failure",
			body:       `{"username":"alice","password":"pw"}`,
			svc:        &fakeUserService{loginErr: assert.AnError},
			wantCode:   http.StatusInternalServerError,
			wantSubstr: "系統錯誤",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authEngine(tt.svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantSubstr)
		})
	}
}

func TestLogin_PassesRememberMe(t *testing.T) {
	svc := &fakeUserService{token: "tok"}
	r := authEngine(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"alice","password":"pw","rememberMe":true}`))
	r.ServeHTTP(w, req)

	assert.True(t, svc.gotRemember)
	assert.Equal(t, "alice", svc.gotUsername)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeUserService
		wantCode   int
		wantSubstr string
	}{
		{
			name:       "success",
			body:       `{"oldPassword":"old","newPassword":"longenough"}`,
			svc:        &fakeUserService{},
			wantCode:   http.StatusOK,
			wantSubstr: "密碼更新成功",
		},
		{
			name:       "new password too short",
			body:       `{"oldPassword":"old","newPassword":"abc"}`,
			svc:        &fakeUserService{},
			wantCode:   http.StatusBadRequest,
			wantSubstr: "新密碼至少需 6 碼",
		},
		{
			name:       "wrong old password",
			body:       `{"oldPassword":"bad","newPassword":"longenough"}`,
			svc:        &fakeUserService{changeErr: services.ErrWrongPassword},
			wantCode:   http.StatusBadRequest,
			wantSubstr: "舊密碼錯誤",
		},
		{
			name:       "user missing",
			body:       `{"oldPassword":"old","newPassword":"longenough"}`,
			svc:        &fakeUserService{changeErr: services.ErrUserNotFound},
			wantCode:   http.StatusNotFound,
			wantSubstr: "使用者不存在",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authEngine(tt.svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/user/password", strings.NewReader(tt.body))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantSubstr)
		})
	}
}
