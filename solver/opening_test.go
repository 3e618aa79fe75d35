package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/617a7a/wordlesolver/words"
)

func TestOpeningComputesOnce(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample")
	s := NewSearch(d, 2)
	opening := &Opening{}

	first, err := opening.Best(s)
	assert.NoError(t, err)
	second, err := opening.Best(s)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// a seed after the fact is a no-op
	opening.Seed(Result{Guess: words.MustParse("zzzzz")})
	third, err := opening.Best(s)
	assert.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestOpeningSeedShortCircuitsTheSearch(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample")
	s := NewSearch(d, 2)
	opening := &Opening{}
	opening.Seed(Result{Guess: words.MustParse("ankle"), Score: 1.5})

	res, err := opening.Best(s)
	assert.NoError(t, err)
	assert.Equal(t, "ankle", res.Guess.String())
}

func TestOpeningFeedsFirstSuggestion(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample")
	s := NewSearch(d, 2)
	opening := &Opening{}
	opening.Seed(Result{Guess: words.MustParse("ample"), Score: 1.5})

	session := NewSession(s, opening)
	guess, err := session.Suggest()
	assert.NoError(t, err)
	assert.Equal(t, "ample", guess.String())
}
