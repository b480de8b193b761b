package store

import (
	"context"
	"sort"
	"sync"

	"word-guess/internal/game"
	"word-guess/internal/model"
)

// MemoryStore is a map-backed GameStore/WordStore/UserStore used by tests
// and local development. Sessions are copied on the way in and out so
// callers never share state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.GameSession
	usage    map[string]int
	words    []string
	wordSet  map[string]struct{}
	users    map[string]*model.User
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*model.GameSession),
		usage:    make(map[string]int),
		wordSet:  make(map[string]struct{}),
		users:    make(map[string]*model.User),
	}
}

func usageKey(username, date string) string { return username + "|" + date }

func cloneSession(s *model.GameSession) *model.GameSession {
	c := *s
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		c.CompletedAt = &t
	}
	c.Guesses = make([]model.Guess, len(s.Guesses))
	copy(c.Guesses, s.Guesses)
	for i := range c.Guesses {
		fb := make([]game.Mark, len(s.Guesses[i].Feedback))
		copy(fb, s.Guesses[i].Feedback)
		c.Guesses[i].Feedback = fb
	}
	return &c
}

func (m *MemoryStore) SaveSession(_ context.Context, s *model.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

func (m *MemoryStore) LoadSession(_ context.Context, id string) (*model.GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	return cloneSession(s), nil
}

func (m *MemoryStore) ListSessionsByDate(_ context.Context, date string) ([]model.GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.GameSession
	for _, s := range m.sessions {
		if s.DailyDate == date {
			out = append(out, *cloneSession(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}

func (m *MemoryStore) ListSessionsByUser(_ context.Context, username string) ([]model.GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.GameSession
	for _, s := range m.sessions {
		if s.Username == username {
			out = append(out, *cloneSession(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}

func (m *MemoryStore) IncrementDailyUsage(_ context.Context, username, date string, limit int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := usageKey(username, date)
	count := m.usage[key]
	if count >= limit {
		return count, game.ErrDailyLimitExceeded
	}
	count++
	m.usage[key] = count
	return count, nil
}

func (m *MemoryStore) GetDailyUsage(_ context.Context, username, date string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usage[usageKey(username, date)], nil
}

func (m *MemoryStore) AddWord(_ context.Context, word string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wordSet[word]; ok {
		return game.ErrWordExists
	}
	m.wordSet[word] = struct{}{}
	m.words = append(m.words, word)
	sort.Strings(m.words)
	return nil
}

func (m *MemoryStore) ListWords(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Username]; ok {
		return ErrUserExists
	}
	m.nextID++
	u.ID = m.nextID
	c := *u
	m.users[u.Username] = &c
	return nil
}

func (m *MemoryStore) GetUser(_ context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	c := *u
	return &c, nil
}
