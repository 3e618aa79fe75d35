package solver

import (
	"errors"

	"github.com/617a7a/wordlesolver/words"
)

// MaxGuesses is the wordle guess limit.
const MaxGuesses = 6

// State is the session lifecycle. Solved, Exhausted and Contradiction are
// terminal.
type State uint8

const (
	Active        State = iota
	Solved              // most recent pattern was all exact
	Exhausted           // guess limit reached without solving
	Contradiction       // no dictionary word matches the feedback seen so far
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Contradiction:
		return "contradiction"
	}
	return "unknown"
}

// Terminal reports whether the session accepts no further operations.
func (s State) Terminal() bool {
	return s != Active
}

var ErrInvalidState = errors.New("session is not active")

// GuessRecord is one guess and the feedback the game returned for it.
type GuessRecord struct {
	Guess   words.Word
	Pattern words.Pattern
}

// Session tracks one game: the candidates still consistent with every
// observation and the guess history. A session is owned by a single caller;
// calls must not overlap.
type Session struct {
	search     *Search
	opening    *Opening
	candidates *WordList
	history    []GuessRecord
	state      State
}

// NewSession starts a game over the search's full dictionary.
func NewSession(search *Search, opening *Opening) *Session {
	return &Session{
		search:     search,
		opening:    opening,
		candidates: AllOf(search.dict),
		state:      Active,
	}
}

// Suggest returns the guess to play this turn: the cached opening guess on
// the first turn, otherwise the best guess for the current candidates.
func (s *Session) Suggest() (words.Word, error) {
	if s.state.Terminal() {
		return words.Word{}, ErrInvalidState
	}
	var res Result
	var err error
	if len(s.history) == 0 {
		res, err = s.opening.Best(s.search)
	} else {
		res, err = s.search.BestGuess(s.candidates)
	}
	if err != nil {
		return words.Word{}, err
	}
	return res.Guess, nil
}

// Record applies the feedback the game returned for guess. It narrows the
// candidates irreversibly and moves the session to a terminal state when the
// guess solved the game, the feedback cannot be explained by the dictionary,
// or the guess limit is reached.
func (s *Session) Record(guess words.Word, pattern words.Pattern) error {
	if s.state.Terminal() {
		return ErrInvalidState
	}
	s.history = append(s.history, GuessRecord{Guess: guess, Pattern: pattern})
	s.candidates = Filter(s.search.dict, s.candidates, guess, pattern)
	switch {
	case pattern.AllExact():
		s.state = Solved
	case s.candidates.Len() == 0:
		s.state = Contradiction
	case len(s.history) >= MaxGuesses:
		s.state = Exhausted
	}
	return nil
}

func (s *Session) State() State {
	return s.state
}

// Remaining is the number of candidates still consistent with the feedback.
func (s *Session) Remaining() int {
	return s.candidates.Len()
}

// Candidates returns the remaining candidate words in dictionary order.
func (s *Session) Candidates() []words.Word {
	return s.candidates.Words(s.search.dict)
}

// History returns a copy of the guesses recorded so far.
func (s *Session) History() []GuessRecord {
	ret := make([]GuessRecord, len(s.history))
	copy(ret, s.history)
	return ret
}
