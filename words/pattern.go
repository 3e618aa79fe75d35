package words

import (
	"errors"
	"fmt"
)

// Tile is the feedback for a single letter of a guess.
type Tile uint8

const (
	Absent  Tile = iota // letter not in the secret (or all its occurrences used up)
	Present             // letter in the secret at another position
	Exact               // letter in the secret at this position
)

func (t Tile) rune() rune {
	switch t {
	case Absent:
		return 'r'
	case Present:
		return 'y'
	case Exact:
		return 'g'
	}
	panic("invalid tile: " + fmt.Sprint(uint8(t)))
}

// Pattern is the per position feedback for one guess against one secret.
// It is comparable and usable as a map key.
type Pattern [Length]Tile

var ErrPatternFormat = errors.New("pattern must be five of r, y, g")

// ParsePattern reads the r/y/g notation, e.g. "gyrrr".
func ParsePattern(s string) (Pattern, error) {
	runes := []rune(s)
	if len(runes) != Length {
		return Pattern{}, fmt.Errorf("%w: %q", ErrPatternFormat, s)
	}
	var p Pattern
	for i, r := range runes {
		switch r {
		case 'r':
			p[i] = Absent
		case 'y':
			p[i] = Present
		case 'g':
			p[i] = Exact
		default:
			return Pattern{}, fmt.Errorf("%w: %q", ErrPatternFormat, s)
		}
	}
	return p, nil
}

// MustParsePattern is ParsePattern for patterns known to be valid.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) String() string {
	runes := make([]rune, Length)
	for i, t := range p {
		runes[i] = t.rune()
	}
	return string(runes)
}

// AllExact reports whether the pattern means the guess was the secret.
func (p Pattern) AllExact() bool {
	for _, t := range p {
		if t != Exact {
			return false
		}
	}
	return true
}
