package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"word-guess/internal/game"
	"word-guess/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSessionRoundtrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	sess := &model.GameSession{
		ID:         "g1",
		Username:   "PlayerOne",
		TargetWord: "CRANE",
		Status:     game.StatusInProgress,
		DailyDate:  "2026-08-29",
		StartedAt:  time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, m.SaveSession(ctx, sess))

	got, err := m.LoadSession(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", got.TargetWord)

	// Mutating the loaded copy must not reach the store.
	got.Guesses = append(got.Guesses, model.Guess{Word: "SLATE"})
	again, err := m.LoadSession(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, again.Guesses)

	_, err = m.LoadSession(ctx, "missing")
	assert.ErrorIs(t, err, game.ErrGameNotFound)
}

func TestMemoryStoreListOrdering(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"late", "early", "mid"} {
		offset := []time.Duration{2 * time.Hour, 0, time.Hour}[i]
		require.NoError(t, m.SaveSession(ctx, &model.GameSession{
			ID:        id,
			Username:  "PlayerOne",
			DailyDate: "2026-08-29",
			StartedAt: base.Add(offset),
		}))
	}

	byDate, err := m.ListSessionsByDate(ctx, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, byDate, 3)
	assert.Equal(t, []string{"early", "mid", "late"}, []string{byDate[0].ID, byDate[1].ID, byDate[2].ID})

	byUser, err := m.ListSessionsByUser(ctx, "PlayerOne")
	require.NoError(t, err)
	assert.Len(t, byUser, 3)

	none, err := m.ListSessionsByDate(ctx, "2026-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStoreDailyUsage(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	count, err := m.GetDailyUsage(ctx, "PlayerOne", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for want := 1; want <= game.MaxGamesPerDay; want++ {
		count, err = m.IncrementDailyUsage(ctx, "PlayerOne", "2026-08-29", game.MaxGamesPerDay)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	count, err = m.IncrementDailyUsage(ctx, "PlayerOne", "2026-08-29", game.MaxGamesPerDay)
	assert.ErrorIs(t, err, game.ErrDailyLimitExceeded)
	assert.Equal(t, game.MaxGamesPerDay, count, "refused increment must not move the counter")

	// Other days and users are independent buckets.
	_, err = m.IncrementDailyUsage(ctx, "PlayerOne", "2026-08-30", game.MaxGamesPerDay)
	assert.NoError(t, err)
	_, err = m.IncrementDailyUsage(ctx, "PlayerTwo", "2026-08-29", game.MaxGamesPerDay)
	assert.NoError(t, err)
}

func TestMemoryStoreDailyUsageConcurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	var successes atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.IncrementDailyUsage(ctx, "PlayerOne", "2026-08-29", game.MaxGamesPerDay); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(game.MaxGamesPerDay), successes.Load())
	count, err := m.GetDailyUsage(ctx, "PlayerOne", "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, game.MaxGamesPerDay, count)
}

func TestMemoryStoreWords(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.AddWord(ctx, "CRANE"))
	assert.ErrorIs(t, m.AddWord(ctx, "CRANE"), game.ErrWordExists)
	require.NoError(t, m.AddWord(ctx, "APPLE"))

	words, err := m.ListWords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "CRANE"}, words)
}

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.CreateUser(ctx, &model.User{Username: "PlayerOne"}))
	assert.ErrorIs(t, m.CreateUser(ctx, &model.User{Username: "PlayerOne"}), ErrUserExists)

	u, err := m.GetUser(ctx, "PlayerOne")
	require.NoError(t, err)
	assert.Equal(t, "PlayerOne", u.Username)

	_, err = m.GetUser(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
