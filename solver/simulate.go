package solver

import (
	"github.com/617a7a/wordlesolver/words"
)

// Simulate plays one session to completion against a known secret, scoring
// each suggestion with the real codec. It returns the guesses made and the
// terminal state the session reached.
func Simulate(search *Search, opening *Opening, secret words.Word) ([]words.Word, State, error) {
	session := NewSession(search, opening)
	for session.State() == Active {
		guess, err := session.Suggest()
		if err != nil {
			return nil, session.State(), err
		}
		if err := session.Record(guess, words.Score(guess, secret)); err != nil {
			return nil, session.State(), err
		}
	}
	history := session.History()
	guesses := make([]words.Word, len(history))
	for i, rec := range history {
		guesses[i] = rec.Guess
	}
	return guesses, session.State(), nil
}
