package solver

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Outcome classifies a suggestion.
type Outcome uint8

const (
	// OutcomeGuess carries the next suggested word.
	OutcomeGuess Outcome = iota
	// OutcomeSolved means exactly one candidate answer remains.
	OutcomeSolved
	// OutcomeExhausted means filtering eliminated every candidate; the
	// feedback sequence is inconsistent with the dictionary. Only a Reset
	// recovers from this state.
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGuess:
		return "guess"
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Suggestion is the engine's answer to a reset or feedback call.
type Suggestion struct {
	Outcome   Outcome
	Word      string // empty when exhausted
	Remaining int    // candidate answers left after this call
}

// Stats is a point-in-time size snapshot of the session's three sets.
type Stats struct {
	Source  int
	Answers int
	Pool    int
}

// Options tune session behavior.
type Options struct {
	// NarrowPool applies every clue to the guess pool as well. Off by
	// default: the pool is seeded at reset and never filtered, which keeps
	// the information-gain search wide but can suggest a word already
	// proven impossible.
	NarrowPool bool
	// MatchWeight is the scoring bonus for exact positional hits.
	// Zero means the default of 4.
	MatchWeight int
}

// Session holds the source dictionary, the shrinking answer set, and the
// guess pool. All calls serialize on one mutex; no partial mutation is ever
// observable and validation failures leave the state untouched.
type Session struct {
	mu      sync.Mutex
	source  *CandidateSet
	answers *CandidateSet
	pool    *CandidateSet
	opts    Options
}

// NewSession builds a session over the given dictionary words. The answer
// set and guess pool stay empty until the first Reset.
func NewSession(words []Word, opts Options) *Session {
	if opts.MatchWeight <= 0 {
		opts.MatchWeight = defaultMatchWeight
	}
	return &Session{
		source:  NewCandidateSet(words),
		answers: NewCandidateSet(nil),
		pool:    NewCandidateSet(nil),
		opts:    opts,
	}
}

// Reset starts a new search anchored on a known first letter: the source
// dictionary is filtered down to words starting with it, and the guess pool
// is reseeded from that same filtered set.
func (s *Session) Reset(letter byte) (Suggestion, error) {
	if letter < 'a' || letter > 'z' {
		return Suggestion{}, ErrSeedLetter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.source.Clone()
	working.Filter(seedClue(letter))
	s.answers = working
	s.pool = working.Clone()

	log.Debugf("session reset on '%c': %d candidates", letter, s.answers.Len())
	return s.nextGuess(), nil
}

// ApplyFeedback decodes the feedback for a previously suggested guess,
// narrows the answer set with each resulting clue, and returns the next
// suggestion. Guess and feedback must be caller-normalized to lowercase;
// invalid input is rejected before any filtering happens.
func (s *Session) ApplyFeedback(guess, feedback string) (Suggestion, error) {
	clues, err := CluesFromFeedback(guess, feedback)
	if err != nil {
		return Suggestion{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range clues {
		s.answers.Filter(c)
		if s.opts.NarrowPool {
			s.pool.Filter(c)
		}
	}

	log.Debugf("feedback %q on %q: %d candidates left", feedback, guess, s.answers.Len())
	return s.nextGuess(), nil
}

// NextGuess recomputes the current suggestion without applying any new
// information.
func (s *Session) NextGuess() Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextGuess()
}

// Snapshot returns the current set sizes.
func (s *Session) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Source:  s.source.Len(),
		Answers: s.answers.Len(),
		Pool:    s.pool.Len(),
	}
}

// nextGuess picks the suggestion for the current state. Terminal states
// (zero or one candidate) short-circuit before any frequency work; otherwise
// the guess pool is ranked against the answer set's letter frequencies.
// Callers must hold s.mu.
func (s *Session) nextGuess() Suggestion {
	switch s.answers.Len() {
	case 0:
		return Suggestion{Outcome: OutcomeExhausted}
	case 1:
		return Suggestion{
			Outcome:   OutcomeSolved,
			Word:      s.answers.words[0].String(),
			Remaining: 1,
		}
	}

	freq := s.answers.CharFrequency()
	best, ok := s.pool.RankBest(freq, s.opts.MatchWeight)
	if !ok {
		// Pool only empties when NarrowPool filtered it dry.
		return Suggestion{Outcome: OutcomeExhausted, Remaining: s.answers.Len()}
	}
	return Suggestion{
		Outcome:   OutcomeGuess,
		Word:      best.String(),
		Remaining: s.answers.Len(),
	}
}
