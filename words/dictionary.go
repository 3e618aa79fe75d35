package words

import (
	mapset "github.com/deckarep/golang-set"
)

// Dictionary is the ordered, de-duplicated word list loaded once at startup.
// It is immutable and safe to share read-only between sessions and workers.
type Dictionary struct {
	words []Word
	index map[Word]int
}

// NewDictionary validates every word and drops duplicates, keeping the first
// occurrence so dictionary order stays stable.
func NewDictionary(list []string) (*Dictionary, error) {
	d := &Dictionary{
		words: make([]Word, 0, len(list)),
		index: make(map[Word]int, len(list)),
	}
	seen := mapset.NewThreadUnsafeSet()
	for _, s := range list {
		w, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if !seen.Add(w) {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	return d, nil
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// At returns the word at dictionary position i.
func (d *Dictionary) At(i int) Word {
	return d.words[i]
}

// Index returns the dictionary position of w.
func (d *Dictionary) Index(w Word) (int, bool) {
	i, ok := d.index[w]
	return i, ok
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.index[w]
	return ok
}

// Words returns the underlying word slice. Callers must not modify it.
func (d *Dictionary) Words() []Word {
	return d.words
}

func (d *Dictionary) Strings() []string {
	ret := make([]string, len(d.words))
	for i, w := range d.words {
		ret[i] = w.String()
	}
	return ret
}
