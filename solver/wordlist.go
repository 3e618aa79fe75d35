package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/617a7a/wordlesolver/words"
)

// WordList is a set of dictionary positions backed by a bitset. Iteration
// order is dictionary order.
type WordList struct {
	bits *bitset.BitSet
}

// NewWordList returns an empty list sized for a dictionary of n words.
func NewWordList(n int) *WordList {
	return &WordList{bits: bitset.New(uint(n))}
}

// AllOf returns a list containing every word in the dictionary.
func AllOf(d *words.Dictionary) *WordList {
	wl := NewWordList(d.Len())
	for i := 0; i < d.Len(); i++ {
		wl.bits.Set(uint(i))
	}
	return wl
}

func (wl *WordList) Insert(i int) {
	wl.bits.Set(uint(i))
}

func (wl *WordList) Contains(i int) bool {
	return wl.bits.Test(uint(i))
}

func (wl *WordList) Len() int {
	return int(wl.bits.Count())
}

// First returns the lowest dictionary position in the list.
func (wl *WordList) First() (int, bool) {
	i, ok := wl.bits.NextSet(0)
	return int(i), ok
}

// Range iterates the list in dictionary order, usable with range-over-func.
func (wl *WordList) Range(yield func(i int) bool) {
	for i, ok := wl.bits.NextSet(0); ok; i, ok = wl.bits.NextSet(i + 1) {
		if !yield(int(i)) {
			return
		}
	}
}

// Words resolves the list against its dictionary.
func (wl *WordList) Words(d *words.Dictionary) []words.Word {
	ret := make([]words.Word, 0, wl.Len())
	for i := range wl.Range {
		ret = append(ret, d.At(i))
	}
	return ret
}
