package solver

import "testing"

func newTestSet(t *testing.T, words ...string) *CandidateSet {
	t.Helper()
	parsed := make([]Word, 0, len(words))
	for _, s := range words {
		parsed = append(parsed, mustWord(t, s))
	}
	return NewCandidateSet(parsed)
}

func wordStrings(s *CandidateSet) []string {
	out := make([]string, 0, s.Len())
	for _, w := range s.Words() {
		out = append(out, w.String())
	}
	return out
}

// Filtering only ever shrinks the set.
func TestFilterMonotonic(t *testing.T) {
	set := newTestSet(t, "crane", "slate", "canes", "wrote", "enter")

	clues := []Clue{
		{Letter: 'e', MinCount: 1, Marks: marks(VerdictMaybe, VerdictMaybe, VerdictMaybe, VerdictMaybe, VerdictMaybe)},
		{Letter: 'c', MinCount: 0, Marks: marks(VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent)},
		{Letter: 'z', MinCount: 1, Marks: marks(VerdictMaybe, VerdictMaybe, VerdictMaybe, VerdictMaybe, VerdictMaybe)},
	}

	prev := set.Len()
	for _, c := range clues {
		set.Filter(c)
		if set.Len() > prev {
			t.Fatalf("filter grew the set: %d -> %d", prev, set.Len())
		}
		prev = set.Len()
	}
	if set.Len() != 0 {
		// no candidate contains 'z'
		t.Errorf("expected empty set, got %v", wordStrings(set))
	}
}

func TestFilterKeepsOnlyMatches(t *testing.T) {
	set := newTestSet(t, "crane", "slate", "canes", "wrote")

	// 'a' confirmed at index 2
	set.Filter(Clue{Letter: 'a', MinCount: 1, Marks: marks(VerdictMaybe, VerdictMaybe, VerdictMatch, VerdictMaybe, VerdictMaybe)})

	got := wordStrings(set)
	if len(got) != 2 || got[0] != "crane" || got[1] != "slate" {
		t.Errorf("expected [crane slate], got %v", got)
	}
}

// A fully resolved clue zeroes its letter's frequency row even while the
// remaining words still contain the letter.
func TestResolvedLetterZeroed(t *testing.T) {
	set := newTestSet(t, "apple", "amber", "angle")

	resolved := Clue{Letter: 'a', MinCount: 1, Marks: marks(VerdictMatch, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent)}
	if !resolved.Resolved() {
		t.Fatal("test clue should be fully resolved")
	}
	set.Filter(resolved)

	if set.Len() == 0 {
		t.Fatal("all three words start with 'a', none should drop")
	}
	freq := set.CharFrequency()
	counts, ok := freq['a']
	if !ok {
		t.Fatal("'a' should still have a row, just an all-zero one")
	}
	for i, n := range counts {
		if n != 0 {
			t.Errorf("resolved letter 'a' has nonzero count %d at position %d", n, i)
		}
	}
	// other letters keep counting as usual
	if freq['p'] == nil || freq['p'][1] != 1 {
		t.Error("'p' at position 1 should count exactly once")
	}
}

func TestCharFrequencyCounts(t *testing.T) {
	set := newTestSet(t, "crane", "canes")
	freq := set.CharFrequency()

	if freq['c'][0] != 2 {
		t.Errorf("'c' at position 0: expected 2, got %d", freq['c'][0])
	}
	if freq['a'][2] != 1 || freq['a'][1] != 1 {
		t.Error("'a' counts should split between positions 1 and 2")
	}
	if freq['z'] != nil {
		t.Error("letters never seen must have no row")
	}
}

// Ties must keep their original order, so the first loaded word wins.
func TestRankBestStable(t *testing.T) {
	set := newTestSet(t, "bbbbb", "ccccc", "ddddd")
	freq := Frequency{
		'b': {1, 1, 1, 1, 1},
		'c': {1, 1, 1, 1, 1},
		'd': {1, 1, 1, 1, 1},
	}

	best, ok := set.RankBest(freq, 4)
	if !ok {
		t.Fatal("expected a ranked word")
	}
	if best.String() != "bbbbb" {
		t.Errorf("tie should keep original order, got %q", best.String())
	}
}

func TestRankBestPrefersScore(t *testing.T) {
	set := newTestSet(t, "bbbbb", "ccccc")
	freq := Frequency{
		'b': {1, 0, 0, 0, 0},
		'c': {0, 9, 0, 0, 0},
	}
	best, _ := set.RankBest(freq, 4)
	if best.String() != "ccccc" {
		t.Errorf("expected ccccc to outscore bbbbb, got %q", best.String())
	}

	// membership is unchanged, only the order moved
	if set.Len() != 2 {
		t.Errorf("ranking must not drop words, len=%d", set.Len())
	}
}

func TestRankBestEmpty(t *testing.T) {
	set := newTestSet(t)
	if _, ok := set.RankBest(Frequency{}, 4); ok {
		t.Error("empty set must not rank anything")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := newTestSet(t, "crane", "slate")
	clone := orig.Clone()

	clone.Filter(Clue{Letter: 'c', MinCount: 0, Marks: marks(VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent)})

	if clone.Len() != 1 {
		t.Errorf("clone should have filtered down to 1, got %d", clone.Len())
	}
	if orig.Len() != 2 {
		t.Errorf("filtering the clone touched the original: len=%d", orig.Len())
	}
}
