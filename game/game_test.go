package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/617a7a/wordlesolver/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.NewDictionary([]string{"apple", "angle", "ankle", "ample", "crane", "slate"})
	assert.NoError(t, err)
	return d
}

func TestNewRejectsSecretOutsideList(t *testing.T) {
	_, err := New(testDict(t), words.MustParse("zebra"))
	assert.ErrorIs(t, err, ErrNotInList)
}

func TestWin(t *testing.T) {
	g, err := New(testDict(t), words.MustParse("angle"))
	assert.NoError(t, err)

	pattern, err := g.Guess("apple")
	assert.NoError(t, err)
	assert.Equal(t, "grrgg", pattern.String())
	assert.Equal(t, Playing, g.State())

	pattern, err = g.Guess("ANGLE\n")
	assert.NoError(t, err)
	assert.True(t, pattern.AllExact())
	assert.Equal(t, Won, g.State())

	_, err = g.Guess("crane")
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestLoseAfterSixGuesses(t *testing.T) {
	g, err := New(testDict(t), words.MustParse("angle"))
	assert.NoError(t, err)
	for i := 0; i < Rows; i++ {
		assert.Equal(t, Playing, g.State())
		_, err := g.Guess("crane")
		assert.NoError(t, err)
	}
	assert.Equal(t, Lost, g.State())
	assert.Equal(t, 0, g.TurnsLeft())
}

func TestGuessValidation(t *testing.T) {
	g, err := New(testDict(t), words.MustParse("angle"))
	assert.NoError(t, err)

	_, err = g.Guess("ang")
	assert.ErrorIs(t, err, words.ErrWordLength)
	_, err = g.Guess("zebra")
	assert.ErrorIs(t, err, ErrNotInList)
	assert.Equal(t, Rows, g.TurnsLeft(), "rejected guesses do not cost a turn")
}

func TestNewRandomPicksFromDictionary(t *testing.T) {
	d := testDict(t)
	for i := 0; i < 20; i++ {
		assert.True(t, d.Contains(NewRandom(d).Secret()))
	}
}
