package words

import (
	"errors"
	"fmt"
)

// Length is the number of letters in a wordle word.
const Length = 5

var (
	ErrWordLength   = errors.New("word is not five letters")
	ErrWordAlphabet = errors.New("word contains a letter outside a-z")
)

// Word is a five letter lower case word.
type Word [Length]rune

// Parse validates s and returns it as a Word. The word list loader is
// expected to have normalized case already; upper case letters are rejected.
func Parse(s string) (Word, error) {
	runes := []rune(s)
	if len(runes) != Length {
		return Word{}, fmt.Errorf("%w: %q", ErrWordLength, s)
	}
	var w Word
	for i, r := range runes {
		if r < 'a' || r > 'z' {
			return Word{}, fmt.Errorf("%w: %q", ErrWordAlphabet, s)
		}
		w[i] = r
	}
	return w, nil
}

// MustParse is Parse for words known to be valid, such as test fixtures.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}
