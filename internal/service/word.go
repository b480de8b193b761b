package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"word-guess/internal/game"
	"word-guess/internal/store"

	"github.com/samber/lo"
)

// Starter inventory, loaded once when the words table is empty.
var seedWords = []string{
	"APPLE", "BREAD", "CHAIR", "DANCE", "EAGLE",
	"FLAME", "GRAPE", "HOUSE", "IMAGE", "JOKER",
	"KNIFE", "LEMON", "MOUSE", "NIGHT", "OCEAN",
	"PIANO", "QUEEN", "RIVER", "STORM", "TIGER",
}

// WordService owns the word inventory: the session engine draws targets
// from it and admins manage it.
type WordService struct {
	store store.WordStore
}

func NewWordService(st store.WordStore) *WordService { return &WordService{store: st} }

// Seed loads the starter words if the inventory is empty. Duplicates in
// the seed list itself are dropped rather than treated as errors.
func (s *WordService) Seed(ctx context.Context) error {
	words, err := s.store.ListWords(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(words) > 0 {
		return nil
	}
	for _, w := range lo.Uniq(seedWords) {
		if err := s.store.AddWord(ctx, w); err != nil {
			return fmt.Errorf("seed %s: %w", w, err)
		}
	}
	slog.Info("word inventory seeded", "count", len(seedWords))
	return nil
}

// RandomWord draws a uniformly random word from the inventory. Duplicate
// targets across sessions are allowed.
func (s *WordService) RandomWord(ctx context.Context) (string, error) {
	words, err := s.store.ListWords(ctx)
	if err != nil {
		return "", fmt.Errorf("random word: %w", err)
	}
	if len(words) == 0 {
		return "", game.ErrNoWords
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		slog.Warn("random draw failed, using first word", "err", err)
		return words[0], nil
	}
	return words[n.Int64()], nil
}

// Add normalizes and stores a new word.
func (s *WordService) Add(ctx context.Context, raw string) (string, error) {
	word, err := game.Normalize(raw)
	if err != nil {
		return "", err
	}
	if err := s.store.AddWord(ctx, word); err != nil {
		return "", err
	}
	slog.Info("word added", "word", word)
	return word, nil
}

func (s *WordService) List(ctx context.Context) ([]string, error) {
	return s.store.ListWords(ctx)
}
