package solver

import (
	"math"

	"github.com/617a7a/wordlesolver/words"
)

// Entropy scores a guess against the current candidates as the Shannon
// entropy of the partition the guess induces: candidates are grouped by the
// pattern each would produce, and the more evenly the groups split the
// candidates the higher the score. A guess producing a distinct pattern for
// every candidate reaches the maximum, log2 of the candidate count.
func Entropy(d *words.Dictionary, candidates *WordList, guess words.Word) float64 {
	total := candidates.Len()
	if total == 0 {
		return 0
	}
	partition := make(map[words.Pattern]int)
	for i := range candidates.Range {
		partition[words.Score(guess, d.At(i))]++
	}
	entropy := 0.0
	for _, count := range partition {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
