package solver

import (
	"sync"
)

// Opening caches the best opening guess, the result of scoring every
// dictionary word against the full dictionary. The computation is quadratic
// in dictionary size, so it runs at most once per Opening; every session
// created afterwards reuses the cached result. Construct one per process and
// pass it explicitly to the sessions that need it.
type Opening struct {
	once sync.Once
	res  Result
	err  error
}

// Best returns the cached opening guess, computing it on first use.
func (o *Opening) Best(s *Search) (Result, error) {
	o.once.Do(func() {
		o.res, o.err = s.BestGuess(AllOf(s.dict))
	})
	return o.res, o.err
}

// Seed primes the cache with a previously computed result, e.g. one restored
// from the on-disk strategy cache. It is a no-op once the cache is populated.
func (o *Opening) Seed(r Result) {
	o.once.Do(func() {
		o.res = r
	})
}
