package model

import (
	"time"

	"word-guess/internal/game"
)

type User struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// GameSession is one bounded attempt at a target word. DailyDate is the
// UTC calendar date of StartedAt, denormalized so the daily-limit check
// and the reports query the same bucket.
type GameSession struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Username    string      `gorm:"index:idx_games_user_date" json:"username"`
	TargetWord  string      `gorm:"size:8" json:"-"`
	Status      game.Status `gorm:"size:16;default:in_progress" json:"status"`
	DailyDate   string      `gorm:"type:date;index:idx_games_user_date" json:"daily_date"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at"`
	Guesses     []Guess     `gorm:"foreignKey:GameID" json:"guesses"`
}

func (s *GameSession) Won() bool       { return s.Status == game.StatusWon }
func (s *GameSession) Completed() bool { return s.Status != game.StatusInProgress }

type Guess struct {
	ID        int         `gorm:"primaryKey" json:"-"`
	GameID    string      `gorm:"size:36;index" json:"-"`
	Seq       int         `json:"seq"`
	Word      string      `gorm:"size:8" json:"word"`
	Feedback  []game.Mark `gorm:"serializer:json" json:"feedback"`
	CreatedAt time.Time   `json:"created_at"`
}

// DailyUsage counts sessions started per user per UTC calendar day.
// The counter only ever goes up.
type DailyUsage struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex:uk_usage_user_date" json:"username"`
	DailyDate    string `gorm:"type:date;uniqueIndex:uk_usage_user_date" json:"daily_date"`
	GamesStarted int    `json:"games_started"`
}

type WordEntry struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Word string `gorm:"size:8;uniqueIndex" json:"word"`
}

func (User) TableName() string        { return "users" }
func (GameSession) TableName() string { return "games" }
func (Guess) TableName() string       { return "guesses" }
func (DailyUsage) TableName() string  { return "daily_usage" }
func (WordEntry) TableName() string   { return "words" }
