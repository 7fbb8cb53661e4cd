package services

import (
	"context"
	"errors"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/auth"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/rowstore"
)

// ErrInvalidCredentials covers both unknown user and wrong password so the
// response cannot reveal which check failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// UserService handles login and password changes against the Users table.
type UserService struct {
	store rowstore.RowStore
}

func NewUserService(store rowstore.RowStore) *UserService {
	return &UserService{store: store}
}

// Login verifies the credentials and issues a signed token. rememberMe
// selects the long token lifetime.
func (s *UserService) Login(ctx context.Context, username, password string, rememberMe bool) (string, error) {
	rows, err := s.store.Read(ctx, models.TableUsers)
	if err != nil {
		return "", err
	}

	var user *models.User
	for _, row := range rows {
		u := models.UserFromRow(row)
		if u.Username == username {
			user = &u
			break
		}
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(username, rememberMe)
}

// ChangePassword re-verifies the current password before overwriting the
// stored hash. Previously issued tokens stay valid until natural expiry.
func (s *UserService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	rows, err := s.store.Read(ctx, models.TableUsers)
	if err != nil {
		return err
	}

	rowIndex := -1
	var user models.User
	for i, row := range rows {
		u := models.UserFromRow(row)
		if u.Username == username {
			user = u
			rowIndex = i + 2
			break
		}
	}
	if rowIndex == -1 {
		return ErrUserNotFound
	}

	if err := auth.VerifyPassword(user.PasswordHash, oldPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = newHash
	return s.store.Update(ctx, models.TableUsers, rowIndex, user.Row())
}
