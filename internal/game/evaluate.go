package game

// Evaluate scores a guess against the target word and returns one Mark per
// position. Both words must already be normalized to five uppercase letters.
//
// Scoring is two-pass: exact matches are marked first and consume their
// target letter, then the leftover letter counts are handed out to
// misplaced occurrences left to right. A letter is never credited more
// times than it occurs in the target, and an exact match always beats a
// misplaced one for the same target letter.
func Evaluate(guess, target string) []Mark {
	marks := make([]Mark, WordLength)
	var remaining ['Z' - 'A' + 1]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			marks[i] = MarkCorrect
		} else {
			remaining[target[i]-'A']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		if remaining[guess[i]-'A'] > 0 {
			marks[i] = MarkPresent
			remaining[guess[i]-'A']--
		} else {
			marks[i] = MarkAbsent
		}
	}
	return marks
}

// AllCorrect reports whether every mark is MarkCorrect, i.e. a winning guess.
func AllCorrect(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}
