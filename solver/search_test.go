package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/617a7a/wordlesolver/words"
)

func TestBestGuessEmptyCandidates(t *testing.T) {
	d := dict(t, "apple", "angle")
	s := NewSearch(d, 2)
	_, err := s.BestGuess(NewWordList(d.Len()))
	assert.ErrorIs(t, err, ErrNoCandidates)
}

// With one candidate left every guess scores zero; the tie-break picks the
// candidate itself.
func TestBestGuessPrefersCandidateOnTie(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "candy")
	s := NewSearch(d, 2)
	only := NewWordList(d.Len())
	i, _ := d.Index(words.MustParse("candy"))
	only.Insert(i)

	res, err := s.BestGuess(only)
	assert.NoError(t, err)
	assert.Equal(t, "candy", res.Guess.String())
}

// All four words tie at 1.5 bits and all are candidates, so dictionary
// order decides.
func TestBestGuessTieFallsBackToDictionaryOrder(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample")
	s := NewSearch(d, 3)
	res, err := s.BestGuess(AllOf(d))
	assert.NoError(t, err)
	assert.Equal(t, "apple", res.Guess.String())
	assert.InDelta(t, 1.5, res.Score, 1e-9)
}

// The chunked scan returns the same result for any worker count.
func TestBestGuessDeterministicAcrossWorkers(t *testing.T) {
	list := []string{
		"apple", "angle", "ankle", "ample", "maple", "crane", "crate",
		"trace", "react", "least", "slate", "stale", "erase", "speed",
		"abide", "heron", "raise", "arise", "atone", "stone",
	}
	d := dict(t, list...)
	candidates := AllOf(d)

	base, err := NewSearch(d, 1).BestGuess(candidates)
	assert.NoError(t, err)
	for _, workers := range []int{2, 3, 4, 7, 32} {
		res, err := NewSearch(d, workers).BestGuess(candidates)
		assert.NoError(t, err)
		assert.Equal(t, base.Guess, res.Guess, "workers=%d", workers)
		assert.Equal(t, base.Score, res.Score, "workers=%d", workers)
	}
}

func TestBestGuessRepeatable(t *testing.T) {
	d := dict(t, "apple", "angle", "ankle", "ample", "maple")
	s := NewSearch(d, 4)
	first, err := s.BestGuess(AllOf(d))
	assert.NoError(t, err)
	second, err := s.BestGuess(AllOf(d))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
