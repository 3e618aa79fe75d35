package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testScore(t *testing.T, guess, secret, expected string) {
	t.Helper()
	p := Score(MustParse(guess), MustParse(secret))
	assert.Equal(t, expected, p.String(), "guess %s secret %s", guess, secret)
}

func TestScoreExact(t *testing.T) {
	testScore(t, "crane", "crane", "ggggg")
}

func TestScoreAllAbsent(t *testing.T) {
	testScore(t, "vivid", "store", "rrrrr")
}

func TestScorePresent(t *testing.T) {
	testScore(t, "eagle", "angle", "ryggg")
}

// Both e's in speed are present: erase contains two e's, neither aligned.
func TestScoreSpeedErase(t *testing.T) {
	testScore(t, "speed", "erase", "yryyr")
}

// Only one e in abide, so the excess e in speed is absent, not present.
func TestScoreSpeedAbide(t *testing.T) {
	testScore(t, "speed", "abide", "rryry")
}

// Exact matches claim their letter before any present is handed out.
func TestScoreGeeseThose(t *testing.T) {
	testScore(t, "geese", "those", "rrrgg")
}

func TestScoreGuessRepeatsExactLetter(t *testing.T) {
	// the exact l consumes one of local's l's, the second guess l maps to
	// the trailing l, and the second a has no a left
	testScore(t, "llama", "local", "gyyrr")
}

func TestScoreIsDeterministic(t *testing.T) {
	g, s := MustParse("raise"), MustParse("heron")
	assert.Equal(t, Score(g, s), Score(g, s))
}
