package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"word-guess/internal/game"
	"word-guess/internal/model"
	"word-guess/internal/store"

	"github.com/google/uuid"
)

// keyedMutex hands out one mutex per key so operations on the same user
// or the same session serialize while everything else runs in parallel.
// Entries are never evicted; the key space is bounded by active users.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (km *keyedMutex) get(key string) *sync.Mutex {
	km.mu.Lock()
	defer km.mu.Unlock()
	if m, ok := km.locks[key]; ok {
		return m
	}
	m := &sync.Mutex{}
	km.locks[key] = m
	return m
}

// GameService is the session engine: it enforces the daily limit, runs
// the guess state machine and persists every transition through the store.
type GameService struct {
	store store.GameStore
	words *WordService

	userLocks    *keyedMutex
	sessionLocks *keyedMutex

	now func() time.Time
}

func NewGameService(st store.GameStore, words *WordService) *GameService {
	return &GameService{
		store:        st,
		words:        words,
		userLocks:    newKeyedMutex(),
		sessionLocks: newKeyedMutex(),
		now:          time.Now,
	}
}

// DailyStatus reports how many games the user has started today and how
// many remain. Read-only.
func (s *GameService) DailyStatus(ctx context.Context, username string) (*model.DailyStatusResponse, error) {
	date := game.DateOf(s.now())
	played, err := s.store.GetDailyUsage(ctx, username, date)
	if err != nil {
		return nil, err
	}
	remaining := game.MaxGamesPerDay - played
	if remaining < 0 {
		remaining = 0
	}
	return &model.DailyStatusResponse{GamesPlayedToday: played, RemainingGames: remaining}, nil
}

// StartGame draws a target word and creates a new in-progress session,
// claiming one of the user's daily slots. The limit check and the
// increment are one atomic unit: concurrent starts for the same user
// cannot push the counter past the cap.
func (s *GameService) StartGame(ctx context.Context, username string) (*model.GameSession, error) {
	lock := s.userLocks.get(username)
	lock.Lock()
	defer lock.Unlock()

	// Draw before claiming a slot so an empty inventory does not burn a game.
	target, err := s.words.RandomWord(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := game.DateOf(now)
	count, err := s.store.IncrementDailyUsage(ctx, username, date, game.MaxGamesPerDay)
	if err != nil {
		return nil, err
	}

	sess := &model.GameSession{
		ID:         uuid.NewString(),
		Username:   username,
		TargetWord: target,
		Status:     game.StatusInProgress,
		DailyDate:  date,
		StartedAt:  now,
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	slog.Info("game started", "game_id", sess.ID, "username", username, "games_today", count)
	return sess, nil
}

// SubmitGuess validates and scores one guess, advances the state machine
// and persists the session. Guesses for the same session serialize on a
// per-session lock, so at most one guess can trigger the terminal
// transition and the fifth slot cannot be claimed twice.
func (s *GameService) SubmitGuess(ctx context.Context, username, gameID, rawWord string) (*model.GuessResponse, error) {
	word, err := game.Normalize(rawWord)
	if err != nil {
		return nil, err
	}

	lock := s.sessionLocks.get(gameID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.store.LoadSession(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if sess.Username != username {
		return nil, game.ErrWrongOwner
	}
	if sess.Completed() {
		return nil, game.ErrGameCompleted
	}

	marks := game.Evaluate(word, sess.TargetWord)
	won := game.AllCorrect(marks)
	now := s.now()

	sess.Guesses = append(sess.Guesses, model.Guess{
		GameID:    sess.ID,
		Seq:       len(sess.Guesses) + 1,
		Word:      word,
		Feedback:  marks,
		CreatedAt: now,
	})

	switch {
	case won:
		sess.Status = game.StatusWon
	case len(sess.Guesses) >= game.MaxGuesses:
		sess.Status = game.StatusLost
	}
	if sess.Completed() {
		sess.CompletedAt = &now
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	resp := &model.GuessResponse{
		Guess:            word,
		Feedback:         marks,
		Won:              won,
		Completed:        sess.Completed(),
		GuessesRemaining: game.MaxGuesses - len(sess.Guesses),
	}
	// Reveal the target only on a loss; while in progress it stays hidden
	// and a winner already has it on the board.
	if sess.Status == game.StatusLost {
		resp.TargetWord = sess.TargetWord
	}

	slog.Info("guess submitted",
		"game_id", sess.ID, "username", username,
		"attempt", len(sess.Guesses), "status", sess.Status)
	return resp, nil
}
