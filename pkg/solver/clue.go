/*
Package solver implements the candidate filtering and guess scoring engine
for fixed-length word guessing games.

The engine works on three pieces: clues decoded from per-position feedback
strings, candidate sets that shrink as clues are applied, and a positional
letter-frequency heuristic that ranks the remaining guesses. A Session ties
them together behind a single mutex so external drivers (HTTP, IPC, CLI)
only ever see complete state transitions.
*/
package solver

import "errors"

// WordLen is the fixed word length for the whole engine. Every word and
// feedback string must have exactly this many characters.
const WordLen = 5

// Verdict is the per-position knowledge about one letter.
type Verdict uint8

const (
	// VerdictUnset is the codec's placeholder while a clue is being built.
	// CluesFromFeedback resolves every position before returning, so this
	// value is never visible outside clue construction.
	VerdictUnset Verdict = iota
	// VerdictMatch confirms the letter at this exact position.
	VerdictMatch
	// VerdictAbsent confirms the letter is not at this exact position.
	// It says nothing about the rest of the word.
	VerdictAbsent
	// VerdictMaybe carries no positive information: the letter may still
	// appear here.
	VerdictMaybe
)

// Feedback codes accepted by CluesFromFeedback. Any other lowercase letter
// reports the guessed letter as absent at that position.
const (
	FeedbackCorrect    = 'c'
	FeedbackWrongPlace = 'w'
)

var (
	ErrWordLen      = errors.New("solver: word length mismatch")
	ErrWordChar     = errors.New("solver: word contains a character outside a-z")
	ErrFeedbackChar = errors.New("solver: feedback code outside a-z")
	ErrSeedLetter   = errors.New("solver: seed letter outside a-z")
)

// Clue is everything known about one distinct letter after one feedback
// report: a lower bound on its occurrence count and a verdict per position.
type Clue struct {
	Letter   byte
	MinCount int
	Marks    [WordLen]Verdict
}

// Resolved reports whether every position carries a definite verdict.
// A resolved clue's letter yields no further information and is dropped
// from frequency scoring by the candidate set.
func (c Clue) Resolved() bool {
	for _, m := range c.Marks {
		if m != VerdictMatch && m != VerdictAbsent {
			return false
		}
	}
	return true
}

// seedClue anchors a fresh session: the letter is pinned at position 0 and
// the rest of the word stays open.
func seedClue(letter byte) Clue {
	cl := Clue{Letter: letter, MinCount: 1}
	cl.Marks[0] = VerdictMatch
	for i := 1; i < WordLen; i++ {
		cl.Marks[i] = VerdictMaybe
	}
	return cl
}

// CluesFromFeedback decodes a guess plus its per-position feedback string
// into one clue per distinct guessed letter, in ascending letter order.
//
// Feedback codes: 'c' means correct position, 'w' means present but in the
// wrong place, any other lowercase letter means absent at that position.
// Bytes outside a-z are rejected with ErrFeedbackChar.
//
// MinCount is a deliberately conservative lower bound: correct hits plus one
// if any wrong-place report was seen. When a letter draws two or more
// wrong-place reports in a single feedback string the true multiplicity is
// not recovered. Downstream filtering assumes exactly this bound.
func CluesFromFeedback(guess, feedback string) ([]Clue, error) {
	if len(feedback) != WordLen {
		return nil, ErrWordLen
	}
	w, err := ParseWord(guess)
	if err != nil {
		return nil, err
	}
	for i := 0; i < WordLen; i++ {
		if feedback[i] < 'a' || feedback[i] > 'z' {
			return nil, ErrFeedbackChar
		}
	}

	var clues []Clue
	for ch := byte('a'); ch <= 'z'; ch++ {
		var marks [WordLen]Verdict
		correct, wrongPlace, wrong := 0, 0, 0
		seen := false
		for i := 0; i < WordLen; i++ {
			if w[i] != ch {
				continue
			}
			seen = true
			switch feedback[i] {
			case FeedbackCorrect:
				correct++
				marks[i] = VerdictMatch
			case FeedbackWrongPlace:
				wrongPlace++
				marks[i] = VerdictAbsent
			default:
				wrong++
				marks[i] = VerdictAbsent
			}
		}
		if !seen {
			continue
		}

		// One confirmed-absent occurrence rules the letter out of every
		// unguessed position too; otherwise those positions stay open.
		fill := VerdictMaybe
		if wrong > 0 {
			fill = VerdictAbsent
		}
		for i := range marks {
			if marks[i] == VerdictUnset {
				marks[i] = fill
			}
		}

		min := correct
		if wrongPlace > 0 {
			min++
		}
		clues = append(clues, Clue{Letter: ch, MinCount: min, Marks: marks})
	}
	return clues, nil
}
