package solver

import "sort"

// Frequency maps a letter to how often it appears at each position across a
// candidate set. Rebuilt on demand, never persisted.
type Frequency map[byte]*[WordLen]int

// CandidateSet is an ordered collection of candidate words plus the set of
// letters whose information is fully determined. A set is owned by exactly
// one Session; Clone before sharing.
type CandidateSet struct {
	words    []Word
	resolved map[byte]bool
}

// NewCandidateSet wraps the given words. The slice is owned by the set
// afterwards.
func NewCandidateSet(words []Word) *CandidateSet {
	return &CandidateSet{
		words:    words,
		resolved: make(map[byte]bool),
	}
}

func (s *CandidateSet) Len() int {
	return len(s.words)
}

// Words returns the backing word slice in its current order. Callers must
// treat it as read-only.
func (s *CandidateSet) Words() []Word {
	return s.words
}

// Contains does a linear membership scan. Candidate sets are small enough
// after the seed filter that an index is not worth carrying here; the full
// dictionary keeps a trie for this instead.
func (s *CandidateSet) Contains(w Word) bool {
	for _, cand := range s.words {
		if cand == w {
			return true
		}
	}
	return false
}

// Clone deep-copies the word collection and the resolved-letter set.
func (s *CandidateSet) Clone() *CandidateSet {
	words := make([]Word, len(s.words))
	copy(words, s.words)
	resolved := make(map[byte]bool, len(s.resolved))
	for ch := range s.resolved {
		resolved[ch] = true
	}
	return &CandidateSet{words: words, resolved: resolved}
}

// Filter drops, in place, every word inconsistent with the clue. A fully
// resolved clue also registers its letter so CharFrequency stops counting it.
func (s *CandidateSet) Filter(c Clue) {
	if c.Resolved() {
		s.resolved[c.Letter] = true
	}
	n := 0
	for _, w := range s.words {
		if w.Matches(c) {
			s.words[n] = w
			n++
		}
	}
	s.words = s.words[:n]
}

// CharFrequency scans the remaining words and counts each letter per
// position. Rows for resolved letters are zeroed: guessing a fully
// determined letter again yields no new information, so it must not pull
// scores up.
func (s *CandidateSet) CharFrequency() Frequency {
	freq := make(Frequency)
	for _, w := range s.words {
		for i, ch := range w {
			counts := freq[ch]
			if counts == nil {
				counts = new([WordLen]int)
				freq[ch] = counts
			}
			counts[i]++
		}
	}
	for ch := range s.resolved {
		if counts := freq[ch]; counts != nil {
			*counts = [WordLen]int{}
		}
	}
	return freq
}

// RankBest sorts the words by descending score and returns the top entry.
// The sort is stable so ties keep their current order. Membership is
// unchanged; only the ordering moves.
func (s *CandidateSet) RankBest(freq Frequency, matchWeight int) (Word, bool) {
	if len(s.words) == 0 {
		return Word{}, false
	}
	scores := make([]int, len(s.words))
	for i, w := range s.words {
		scores[i] = w.Score(freq, matchWeight)
	}
	order := make([]int, len(s.words))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	sorted := make([]Word, len(s.words))
	for i, idx := range order {
		sorted[i] = s.words[idx]
	}
	s.words = sorted
	return s.words[0], true
}
