package model

import (
	"time"

	"word-guess/internal/game"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type StartGameResponse struct {
	GameID           string `json:"game_id"`
	Message          string `json:"message"`
	GuessesRemaining int    `json:"guesses_remaining"`
}

type GuessRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Word   string `json:"word" binding:"required"`
}

// GuessResponse mirrors one submitted guess. TargetWord is only filled in
// when the session was just lost; a winner already knows the word.
type GuessResponse struct {
	Guess            string      `json:"guess"`
	Feedback         []game.Mark `json:"feedback"`
	Won              bool        `json:"won"`
	Completed        bool        `json:"completed"`
	GuessesRemaining int         `json:"guesses_remaining"`
	TargetWord       string      `json:"target_word,omitempty"`
}

type DailyStatusResponse struct {
	GamesPlayedToday int `json:"games_played_today"`
	RemainingGames   int `json:"remaining_games"`
}

type DailyReport struct {
	Date           string  `json:"date"`
	TotalUsers     int     `json:"total_users"`
	TotalGames     int     `json:"total_games"`
	CorrectGuesses int     `json:"correct_guesses"`
	SuccessRate    float64 `json:"success_rate"`
}

type UserReport struct {
	Username     string            `json:"username"`
	TotalGames   int               `json:"total_games"`
	TotalWins    int               `json:"total_wins"`
	WinRate      float64           `json:"win_rate"`
	DailyReports []UserDailyReport `json:"daily_reports"`
}

type UserDailyReport struct {
	Date        string        `json:"date"`
	GamesPlayed int           `json:"games_played"`
	GamesWon    int           `json:"games_won"`
	Games       []GameSummary `json:"games"`
}

// GameSummary exposes the target word unconditionally: these are
// retrospective admin reports, not live sessions.
type GameSummary struct {
	TargetWord   string     `json:"target_word"`
	Won          bool       `json:"won"`
	GuessesCount int        `json:"guesses_count"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type AddWordRequest struct {
	Word string `json:"word" binding:"required"`
}

type WordListResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}
