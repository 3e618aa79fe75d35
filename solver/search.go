package solver

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/617a7a/wordlesolver/words"
)

var ErrNoCandidates = errors.New("no candidates to search")

// Result is the best guess found for one turn together with its score.
type Result struct {
	Guess words.Word
	Score float64
}

// Search evaluates every dictionary word as a possible guess. The dictionary
// is shared read-only, so concurrent BestGuess calls are safe.
type Search struct {
	dict    *words.Dictionary
	workers int
}

// NewSearch returns a Search using the given number of workers for the
// dictionary scan. workers < 1 means one per available CPU.
func NewSearch(d *words.Dictionary, workers int) *Search {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Search{dict: d, workers: workers}
}

func (s *Search) Dictionary() *words.Dictionary {
	return s.dict
}

// scored is a chunk-local best while scanning.
type scored struct {
	idx       int
	score     float64
	candidate bool
	ok        bool
}

// scoreTolerance is the float tolerance under which two guesses tie.
const scoreTolerance = 1e-9

// better reports whether a beats b: higher entropy wins, ties go to a guess
// that is itself a candidate, then to the earlier dictionary position. The
// rule is a total order, so folding chunk results in any grouping yields the
// same winner as a sequential scan.
func better(a, b scored) bool {
	if !b.ok {
		return a.ok
	}
	if !a.ok {
		return false
	}
	if a.score > b.score+scoreTolerance {
		return true
	}
	if a.score < b.score-scoreTolerance {
		return false
	}
	if a.candidate != b.candidate {
		return a.candidate
	}
	return a.idx < b.idx
}

// BestGuess scans the whole dictionary, not just the candidates, since a
// non-candidate guess can still split the candidates well. The scan is
// partitioned into contiguous chunks scored concurrently; workers share only
// the read-only dictionary and candidate list. Any worker failure aborts the
// search, a partial result is never returned.
func (s *Search) BestGuess(candidates *WordList) (Result, error) {
	if candidates.Len() == 0 {
		return Result{}, ErrNoCandidates
	}
	n := s.dict.Len()
	workers := s.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	locals := make([]scored, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		out := &locals[w]
		g.Go(func() error {
			if lo < 0 || hi > n || lo > hi {
				return fmt.Errorf("chunk [%d,%d) out of bounds for %d words", lo, hi, n)
			}
			var best scored
			for i := lo; i < hi; i++ {
				cur := scored{
					idx:       i,
					score:     Entropy(s.dict, candidates, s.dict.At(i)),
					candidate: candidates.Contains(i),
					ok:        true,
				}
				if better(cur, best) {
					best = cur
				}
			}
			*out = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var best scored
	for _, l := range locals {
		if better(l, best) {
			best = l
		}
	}
	if !best.ok {
		return Result{}, ErrNoCandidates
	}
	return Result{Guess: s.dict.At(best.idx), Score: best.score}, nil
}
