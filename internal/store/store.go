// Package store is the persistence boundary. The engine and the reports
// only see these narrow interfaces; the gorm and in-memory implementations
// live alongside them.
package store

import (
	"context"
	"errors"

	"word-guess/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already exists")
)

// GameStore is everything the session engine and the reporting aggregator
// need from durable storage.
type GameStore interface {
	SaveSession(ctx context.Context, s *model.GameSession) error
	LoadSession(ctx context.Context, id string) (*model.GameSession, error)
	ListSessionsByDate(ctx context.Context, date string) ([]model.GameSession, error)
	ListSessionsByUser(ctx context.Context, username string) ([]model.GameSession, error)

	// IncrementDailyUsage atomically increments the (username, date)
	// counter unless it is already at limit, in which case it returns the
	// current count and game.ErrDailyLimitExceeded. The check and the
	// increment are a single unit relative to concurrent calls.
	IncrementDailyUsage(ctx context.Context, username, date string, limit int) (int, error)
	GetDailyUsage(ctx context.Context, username, date string) (int, error)
}

type WordStore interface {
	AddWord(ctx context.Context, word string) error
	ListWords(ctx context.Context) ([]string, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
}
