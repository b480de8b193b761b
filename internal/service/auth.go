package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"word-guess/internal/model"
	"word-guess/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	store store.UserStore
}

func NewAuthService(st store.UserStore) *AuthService { return &AuthService{store: st} }

// ValidateUsername requires at least 5 characters with both an uppercase
// and a lowercase letter.
func ValidateUsername(username string) error {
	if len(username) < 5 {
		return errors.New("username must be at least 5 characters long")
	}
	if !strings.ContainsFunc(username, unicode.IsUpper) {
		return errors.New("username must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(username, unicode.IsLower) {
		return errors.New("username must contain at least one lowercase letter")
	}
	return nil
}

// ValidatePassword requires at least 5 characters with a letter, a digit
// and one of the special characters $ % * @.
func ValidatePassword(password string) error {
	if len(password) < 5 {
		return errors.New("password must be at least 5 characters long")
	}
	if !strings.ContainsFunc(password, unicode.IsLetter) {
		return errors.New("password must contain alphabetic characters")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return errors.New("password must contain numeric characters")
	}
	if !strings.ContainsAny(password, "$%*@") {
		return errors.New("password must contain at least one special character ($, %, *, @)")
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, username, password string, isAdmin bool) (*model.User, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{Username: username, Password: string(hash), IsAdmin: isAdmin}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	slog.Info("user registered", "username", username, "is_admin", isAdmin)
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.store.GetUser(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
