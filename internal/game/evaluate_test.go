package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExactMatch(t *testing.T) {
	for _, word := range []string{"CRANE", "SPEED", "QUEEN", "ZZZZZ"} {
		marks := Evaluate(word, word)
		require.Len(t, marks, WordLength)
		assert.True(t, AllCorrect(marks), "evaluate(%s, %s) should be all correct", word, word)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Mark
	}{
		{
			// E occurs twice in SPEED but three times in ERASE: only two
			// E's may be credited, and none sit on an exact match.
			name:   "duplicate letters, guess has more than target",
			guess:  "ERASE",
			target: "SPEED",
			want:   []Mark{MarkPresent, MarkAbsent, MarkAbsent, MarkPresent, MarkPresent},
		},
		{
			name:   "duplicate letters, reversed pair",
			guess:  "SPEED",
			target: "ERASE",
			want:   []Mark{MarkPresent, MarkAbsent, MarkPresent, MarkPresent, MarkAbsent},
		},
		{
			// The exact-match L in pass one must not be double-credited
			// to the second L of the guess.
			name:   "repeated guess letter with single target occurrence",
			guess:  "ALLEY",
			target: "APPLE",
			want:   []Mark{MarkCorrect, MarkPresent, MarkAbsent, MarkPresent, MarkAbsent},
		},
		{
			name:   "two hits",
			guess:  "SLATE",
			target: "CRANE",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkCorrect, MarkAbsent, MarkCorrect},
		},
		{
			name:   "no overlap",
			guess:  "ZZZZZ",
			target: "CRANE",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent},
		},
		{
			// An exact match later in the word reserves its letter before
			// earlier misplaced occurrences are considered.
			name:   "exact match reserved before misplaced credit",
			guess:  "EERIE",
			target: "SPREE",
			want:   []Mark{MarkPresent, MarkAbsent, MarkCorrect, MarkAbsent, MarkCorrect},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.guess, tt.target))
		})
	}
}

func TestEvaluateCorrectIffSamePosition(t *testing.T) {
	pairs := [][2]string{
		{"ERASE", "SPEED"},
		{"ALLEY", "APPLE"},
		{"CRANE", "CRANE"},
		{"SLATE", "CRANE"},
		{"AABBA", "ABABA"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		marks := Evaluate(guess, target)
		for i := range marks {
			assert.Equal(t, guess[i] == target[i], marks[i] == MarkCorrect,
				"evaluate(%s, %s) position %d", guess, target, i)
		}
	}
}

func TestEvaluateNeverOvercreditsLetters(t *testing.T) {
	pairs := [][2]string{
		{"ERASE", "SPEED"},
		{"EEEEE", "SPEED"},
		{"ALLEY", "APPLE"},
		{"AABBA", "ABABA"},
		{"GEESE", "EERIE"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		marks := Evaluate(guess, target)
		for letter := byte('A'); letter <= 'Z'; letter++ {
			credited := 0
			for i := range marks {
				if guess[i] == letter && marks[i] != MarkAbsent {
					credited++
				}
			}
			occurrences := strings.Count(target, string(letter))
			assert.LessOrEqual(t, credited, occurrences,
				"evaluate(%s, %s) credits letter %c more often than it occurs", guess, target, letter)
		}
	}
}

func TestAllCorrect(t *testing.T) {
	assert.True(t, AllCorrect([]Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}))
	assert.False(t, AllCorrect([]Mark{MarkCorrect, MarkPresent, MarkCorrect, MarkCorrect, MarkCorrect}))
}
