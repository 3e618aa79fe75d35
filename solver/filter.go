package solver

import (
	"github.com/617a7a/wordlesolver/words"
)

// Filter returns the candidates that would have produced observed when the
// secret is scored against guess. The result preserves dictionary order and
// may be empty: an empty list means no dictionary word explains the feedback,
// which callers treat as the Contradiction state rather than an error.
func Filter(d *words.Dictionary, candidates *WordList, guess words.Word, observed words.Pattern) *WordList {
	ret := NewWordList(d.Len())
	for i := range candidates.Range {
		if words.Score(guess, d.At(i)) == observed {
			ret.Insert(i)
		}
	}
	return ret
}
