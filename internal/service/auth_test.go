package service

import (
	"context"
	"testing"

	"word-guess/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		ok       bool
	}{
		{"PlayerOne", true},
		{"aB3cd", true},
		{"Play", false},      // too short
		{"playerone", false}, // no uppercase
		{"PLAYERONE", false}, // no lowercase
		{"", false},
	}
	for _, tt := range tests {
		err := ValidateUsername(tt.username)
		if tt.ok {
			assert.NoError(t, err, "username=%q", tt.username)
		} else {
			assert.Error(t, err, "username=%q", tt.username)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"abc1$", true},
		{"Pass9@", true},
		{"ab1$", false},   // too short
		{"abcde$", false}, // no digit
		{"12345$", false}, // no letter
		{"abc12", false},  // no special character
		{"abc1!", false},  // wrong special character
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.ok {
			assert.NoError(t, err, "password=%q", tt.password)
		} else {
			assert.Error(t, err, "password=%q", tt.password)
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	svc := NewAuthService(ms)

	u, err := svc.Register(ctx, "PlayerOne", "abc1$", false)
	require.NoError(t, err)
	assert.Equal(t, "PlayerOne", u.Username)
	assert.NotEqual(t, "abc1$", u.Password, "password must be stored hashed")

	_, err = svc.Register(ctx, "PlayerOne", "abc1$", false)
	assert.ErrorIs(t, err, store.ErrUserExists)

	logged, err := svc.Login(ctx, "PlayerOne", "abc1$")
	require.NoError(t, err)
	assert.Equal(t, u.Username, logged.Username)

	_, err = svc.Login(ctx, "PlayerOne", "wrong1$")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "Nobody", "abc1$")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(store.NewMemoryStore())

	_, err := svc.Register(ctx, "bad", "abc1$", false)
	assert.Error(t, err)

	_, err = svc.Register(ctx, "PlayerOne", "weak", false)
	assert.Error(t, err)
}
