// Package game holds the pure rules of the word-guessing game: word
// normalization, the guess evaluator and the session state vocabulary.
// Nothing in here touches a database or a clock besides formatting.
package game

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Game settings.
const (
	WordLength     = 5
	MaxGuesses     = 5
	MaxGamesPerDay = 3
)

// Mark is the per-letter feedback for a guess.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Status is the lifecycle state of a game session. Won and lost are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Domain errors, mapped to HTTP status codes at the handler layer.
var (
	ErrInvalidGuessFormat = errors.New("word must be exactly 5 letters")
	ErrGameNotFound       = errors.New("game not found")
	ErrWrongOwner         = errors.New("game belongs to another user")
	ErrGameCompleted      = errors.New("game already completed")
	ErrDailyLimitExceeded = errors.New("daily game limit reached")
	ErrNoWords            = errors.New("no words available")
	ErrWordExists         = errors.New("word already exists")
)

var wordPattern = regexp.MustCompile(`^[A-Z]{5}$`)

// Normalize trims and uppercases a raw word and validates it is exactly
// five A-Z letters. Returns ErrInvalidGuessFormat otherwise.
func Normalize(raw string) (string, error) {
	word := strings.ToUpper(strings.TrimSpace(raw))
	if !wordPattern.MatchString(word) {
		return "", ErrInvalidGuessFormat
	}
	return word, nil
}

// DateOf returns the UTC calendar date used for daily bucketing,
// formatted YYYY-MM-DD. The engine and the reports share this helper so
// they can never disagree on which day a session belongs to.
func DateOf(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// ValidDate reports whether s is a YYYY-MM-DD date string.
func ValidDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
