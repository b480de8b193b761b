package store

import (
	"context"
	"errors"
	"fmt"

	"word-guess/internal/game"
	"word-guess/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements GameStore, WordStore and UserStore on a relational
// database through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.GameSession{},
		&model.Guess{},
		&model.DailyUsage{},
		&model.WordEntry{},
	)
}

func (s *GormStore) SaveSession(ctx context.Context, sess *model.GameSession) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(sess).Error
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *GormStore) LoadSession(ctx context.Context, id string) (*model.GameSession, error) {
	var sess model.GameSession
	err := s.db.WithContext(ctx).
		Preload("Guesses", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, game.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &sess, nil
}

func (s *GormStore) ListSessionsByDate(ctx context.Context, date string) ([]model.GameSession, error) {
	var sessions []model.GameSession
	err := s.db.WithContext(ctx).
		Preload("Guesses", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("daily_date = ?", date).
		Order("started_at").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list sessions by date: %w", err)
	}
	return sessions, nil
}

func (s *GormStore) ListSessionsByUser(ctx context.Context, username string) ([]model.GameSession, error) {
	var sessions []model.GameSession
	err := s.db.WithContext(ctx).
		Preload("Guesses", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("username = ?", username).
		Order("started_at").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list sessions by user: %w", err)
	}
	return sessions, nil
}

// IncrementDailyUsage does the read-check-increment as a single conditional
// UPDATE so two concurrent starts cannot both claim the last slot. A refused
// increment leaves the counter untouched.
func (s *GormStore) IncrementDailyUsage(ctx context.Context, username, date string, limit int) (int, error) {
	var count int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.DailyUsage{Username: username, DailyDate: date}).Error; err != nil {
			return fmt.Errorf("ensure usage row: %w", err)
		}

		res := tx.Model(&model.DailyUsage{}).
			Where("username = ? AND daily_date = ? AND games_started < ?", username, date, limit).
			UpdateColumn("games_started", gorm.Expr("games_started + 1"))
		if res.Error != nil {
			return fmt.Errorf("increment usage: %w", res.Error)
		}

		var usage model.DailyUsage
		if err := tx.Where("username = ? AND daily_date = ?", username, date).
			First(&usage).Error; err != nil {
			return fmt.Errorf("read usage: %w", err)
		}
		count = usage.GamesStarted

		if res.RowsAffected == 0 {
			return game.ErrDailyLimitExceeded
		}
		return nil
	})
	return count, err
}

func (s *GormStore) GetDailyUsage(ctx context.Context, username, date string) (int, error) {
	var usage model.DailyUsage
	err := s.db.WithContext(ctx).
		Where("username = ? AND daily_date = ?", username, date).
		First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get usage: %w", err)
	}
	return usage.GamesStarted, nil
}

func (s *GormStore) AddWord(ctx context.Context, word string) error {
	var existing model.WordEntry
	err := s.db.WithContext(ctx).Where("word = ?", word).First(&existing).Error
	if err == nil {
		return game.ErrWordExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check word: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(&model.WordEntry{Word: word}).Error; err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	return nil
}

func (s *GormStore) ListWords(ctx context.Context) ([]string, error) {
	var words []string
	err := s.db.WithContext(ctx).
		Model(&model.WordEntry{}).
		Order("word").
		Pluck("word", &words).Error
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *model.User) error {
	var existing model.User
	err := s.db.WithContext(ctx).Where("username = ?", u.Username).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check user: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *GormStore) GetUser(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
