package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/617a7a/wordlesolver/words"
)

func TestSimulateSolves(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample")
	s := NewSearch(d, 2)
	opening := &Opening{}

	guesses, state, err := Simulate(s, opening, words.MustParse("angle"))
	assert.NoError(t, err)
	assert.Equal(t, Solved, state)
	assert.Equal(t, "angle", guesses[len(guesses)-1].String())
	assert.LessOrEqual(t, len(guesses), MaxGuesses)
}

func TestSimulateEverySecret(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample", "maple", "crane", "slate", "stale")
	s := NewSearch(d, 4)
	opening := &Opening{}

	for _, secret := range d.Words() {
		guesses, state, err := Simulate(s, opening, secret)
		assert.NoError(t, err)
		assert.Equal(t, Solved, state, "secret %s", secret)
		assert.Equal(t, secret, guesses[len(guesses)-1], "secret %s", secret)
	}
}
