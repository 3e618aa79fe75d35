// Package game implements a single playable wordle round: a secret word,
// guess validation against the dictionary, and the playing/won/lost
// lifecycle. The solver does not depend on it; the CLI drives both.
package game

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/617a7a/wordlesolver/words"
)

// Rows is the number of guesses a player gets.
const Rows = 6

type State uint8

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

var (
	ErrGameOver  = errors.New("game is finished")
	ErrNotInList = errors.New("guess is not in the word list")
)

// Game is one round against a fixed secret.
type Game struct {
	dict     *words.Dictionary
	secret   words.Word
	guesses  []words.Word
	patterns []words.Pattern
	state    State
}

// New starts a game with the given secret, which must be in the dictionary.
func New(d *words.Dictionary, secret words.Word) (*Game, error) {
	if !d.Contains(secret) {
		return nil, ErrNotInList
	}
	return &Game{dict: d, secret: secret}, nil
}

// NewRandom starts a game with a secret drawn from the dictionary.
func NewRandom(d *words.Dictionary) *Game {
	g, _ := New(d, d.At(rand.IntN(d.Len())))
	return g
}

// Guess validates and applies one guess, returning its feedback. The raw
// input is trimmed and lower cased before validation.
func (g *Game) Guess(raw string) (words.Pattern, error) {
	if g.state != Playing {
		return words.Pattern{}, ErrGameOver
	}
	w, err := words.Parse(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return words.Pattern{}, err
	}
	if !g.dict.Contains(w) {
		return words.Pattern{}, ErrNotInList
	}

	pattern := words.Score(w, g.secret)
	g.guesses = append(g.guesses, w)
	g.patterns = append(g.patterns, pattern)

	if pattern.AllExact() {
		g.state = Won
	} else if len(g.guesses) >= Rows {
		g.state = Lost
	}
	return pattern, nil
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Secret() words.Word {
	return g.secret
}

// TurnsLeft is the number of guesses remaining.
func (g *Game) TurnsLeft() int {
	return Rows - len(g.guesses)
}
