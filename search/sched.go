package search

import (
	"golang.org/x/sync/errgroup"
)

// run executes every task and merges their results.
// Results are merged pairwise, in task order, so that the resulting level does not depend
// on how tasks were scheduled: running the tasks sequentially or in parallel,
// with any number of workers, yields the same level.
func (s *Searcher) run(tasks []task, parallel bool) partial {
	parts := make([]partial, len(tasks))
	s.each(len(tasks), parallel, func(i int) {
		parts[i] = tasks[i]()
	})
	return s.reduce(parts, parallel)
}

// reduce merges all parts, two by two, until only one is left.
// At each round, part 2i is merged with part 2i+1; on ties, the lower index wins.
func (s *Searcher) reduce(parts []partial, parallel bool) partial {
	if len(parts) == 0 {
		return make(partial)
	}
	for len(parts) > 1 {
		next := make([]partial, (len(parts)+1)/2)
		s.each(len(next), parallel, func(i int) {
			if 2*i+1 == len(parts) {
				next[i] = parts[2*i]
			} else {
				next[i] = merge(parts[2*i], parts[2*i+1])
			}
		})
		parts = next
	}
	return parts[0]
}

// each calls f(0), ..., f(nb-1), on up to s.workers goroutines if parallel is true.
// Each call must only write to data owned by its index.
func (s *Searcher) each(nb int, parallel bool, f func(i int)) {
	if !parallel {
		for i := 0; i < nb; i++ {
			f(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < nb; i++ {
		i := i
		g.Go(func() error {
			f(i)
			return nil
		})
	}
	_ = g.Wait() // f never fails
}
