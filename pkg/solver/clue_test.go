package solver

import (
	"errors"
	"testing"
)

// helper to build a mark array tersely in tables
func marks(ms ...Verdict) [WordLen]Verdict {
	var out [WordLen]Verdict
	copy(out[:], ms)
	return out
}

// The decoded clue sequence must be reproducible bit for bit: one clue per
// distinct guessed letter, ascending letter order.
func TestCluesFromFeedbackCrane(t *testing.T) {
	clues, err := CluesFromFeedback("crane", "wacwa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Clue{
		// 'a' reported correct at index 2, everything else stays open
		{Letter: 'a', MinCount: 1, Marks: marks(VerdictMaybe, VerdictMaybe, VerdictMatch, VerdictMaybe, VerdictMaybe)},
		// 'c' wrong place at index 0: present somewhere, just not there
		{Letter: 'c', MinCount: 1, Marks: marks(VerdictAbsent, VerdictMaybe, VerdictMaybe, VerdictMaybe, VerdictMaybe)},
		// 'e' confirmed absent, so every position is ruled out
		{Letter: 'e', MinCount: 0, Marks: marks(VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent)},
		// 'n' wrong place at index 3
		{Letter: 'n', MinCount: 1, Marks: marks(VerdictMaybe, VerdictMaybe, VerdictMaybe, VerdictAbsent, VerdictMaybe)},
		// 'r' confirmed absent
		{Letter: 'r', MinCount: 0, Marks: marks(VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent)},
	}

	if len(clues) != len(expected) {
		t.Fatalf("expected %d clues, got %d", len(expected), len(clues))
	}
	for i, want := range expected {
		if clues[i] != want {
			t.Errorf("clue %d ('%c'): expected %+v, got %+v", i, want.Letter, want, clues[i])
		}
	}
}

// No VerdictUnset may survive clue construction, for any input.
func TestCluesNoUnsetEscapes(t *testing.T) {
	inputs := []struct{ guess, feedback string }{
		{"crane", "wacwa"},
		{"crane", "ccccc"},
		{"geese", "wwcwa"},
		{"melee", "awaww"},
		{"aaaaa", "cwacw"},
	}
	for _, in := range inputs {
		clues, err := CluesFromFeedback(in.guess, in.feedback)
		if err != nil {
			t.Fatalf("%s/%s: unexpected error: %v", in.guess, in.feedback, err)
		}
		for _, c := range clues {
			for i, m := range c.Marks {
				if m == VerdictUnset {
					t.Errorf("%s/%s: clue '%c' leaked VerdictUnset at %d", in.guess, in.feedback, c.Letter, i)
				}
			}
		}
	}
}

// Repeated letters collapse into a single clue, and the occurrence bound
// stays conservative: correct hits plus at most one for wrong-place reports.
func TestCluesRepeatedLetters(t *testing.T) {
	testCases := []struct {
		guess    string
		feedback string
		letter   byte
		minCount int
	}{
		// three 'e' wrong-place reports still only promise one 'e'
		{"melee", "awaww", 'e', 1},
		// one exact hit plus a wrong-place hit promises two
		{"geese", "acwaa", 'e', 2},
		// exact hits count in full
		{"aaaaa", "ccccc", 'a', 5},
		// mixed wrong-place and absent does not recover the true count
		{"geese", "awaac", 'e', 2},
	}

	for _, tc := range testCases {
		clues, err := CluesFromFeedback(tc.guess, tc.feedback)
		if err != nil {
			t.Fatalf("%s/%s: unexpected error: %v", tc.guess, tc.feedback, err)
		}
		found := false
		for _, c := range clues {
			if c.Letter != tc.letter {
				continue
			}
			if found {
				t.Errorf("%s: letter '%c' produced more than one clue", tc.guess, tc.letter)
			}
			found = true
			if c.MinCount != tc.minCount {
				t.Errorf("%s/%s: letter '%c' expected MinCount %d, got %d",
					tc.guess, tc.feedback, tc.letter, tc.minCount, c.MinCount)
			}
		}
		if !found {
			t.Errorf("%s: no clue for letter '%c'", tc.guess, tc.letter)
		}
	}
}

func TestCluesValidation(t *testing.T) {
	testCases := []struct {
		guess    string
		feedback string
		expected error
	}{
		{"cran", "wacw", ErrWordLen},
		{"cranes", "wacwaa", ErrWordLen},
		{"crane", "wacw", ErrWordLen},
		{"crAne", "wacwa", ErrWordChar},
		{"cr4ne", "wacwa", ErrWordChar},
		{"crane", "wa?wa", ErrFeedbackChar},
		{"crane", "waCwa", ErrFeedbackChar},
		{"crane", "wacw1", ErrFeedbackChar},
	}

	for _, tc := range testCases {
		_, err := CluesFromFeedback(tc.guess, tc.feedback)
		if !errors.Is(err, tc.expected) {
			t.Errorf("%q/%q: expected %v, got %v", tc.guess, tc.feedback, tc.expected, err)
		}
	}
}

func TestClueResolved(t *testing.T) {
	full := Clue{Letter: 'e', Marks: marks(VerdictAbsent, VerdictAbsent, VerdictMatch, VerdictAbsent, VerdictAbsent)}
	if !full.Resolved() {
		t.Error("all-definite clue should be resolved")
	}
	open := Clue{Letter: 'e', Marks: marks(VerdictAbsent, VerdictMaybe, VerdictMatch, VerdictAbsent, VerdictAbsent)}
	if open.Resolved() {
		t.Error("clue with a Maybe position must not be resolved")
	}
}
