package solver

// defaultMatchWeight is the scoring bonus for placing a letter where it is
// frequently correct, versus merely testing its presence.
const defaultMatchWeight = 4

// Word is a fixed-length lowercase candidate word. Words are immutable once
// parsed; candidate sets drop them but never rewrite them.
type Word [WordLen]byte

// ParseWord validates and converts a raw string into a Word.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, ErrWordLen
	}
	for i := 0; i < WordLen; i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return w, ErrWordChar
		}
		w[i] = s[i]
	}
	return w, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Matches reports whether the word is consistent with the clue: every
// VerdictMatch position holds the clue letter, no VerdictAbsent position
// does, and the letter occurs at least MinCount times overall.
func (w Word) Matches(c Clue) bool {
	occur := 0
	for i := 0; i < WordLen; i++ {
		if w[i] == c.Letter {
			occur++
		}
		switch c.Marks[i] {
		case VerdictMatch:
			if w[i] != c.Letter {
				return false
			}
		case VerdictAbsent:
			if w[i] == c.Letter {
				return false
			}
		}
	}
	return occur >= c.MinCount
}

// Score rates the word against a positional frequency table. Each distinct
// letter contributes its full frequency vector: matchWeight times the count
// at positions where the word actually places the letter, the plain count
// everywhere else. Letters without a table entry contribute nothing.
func (w Word) Score(freq Frequency, matchWeight int) int {
	var seen [26]bool
	score := 0
	for _, ch := range w {
		if seen[ch-'a'] {
			continue
		}
		seen[ch-'a'] = true
		counts, ok := freq[ch]
		if !ok {
			continue
		}
		for i, n := range counts {
			if w[i] == ch {
				score += n * matchWeight
			} else {
				score += n
			}
		}
	}
	return score
}
