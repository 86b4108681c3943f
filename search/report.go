package search

import (
	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/vec"
)

// A Solution is an expression whose output matches the goal.
type Solution struct {
	Length int
	Text   string
	Output vec.Vector // Output of the expression, before remapping
}

// matches is true iff an expression using the variables in mask and yielding out is a solution.
// Comparison stops at the first mismatching test case.
func (s *Searcher) matches(out vec.Vector, mask expr.Mask) bool {
	if mask&s.required != s.required {
		return false
	}
	for i, n := range out {
		if s.remap(n) != s.goal[i] {
			return false
		}
	}
	return true
}

// functional is true iff equal values in out never map to different values in the goal,
// i.e iff the goal could still be computed from out.
func (s *Searcher) functional(out vec.Vector) bool {
	seen := make(map[vec.Num]vec.Num, len(out))
	for i, n := range out {
		if g, ok := seen[n]; ok && g != s.goal[i] {
			return false
		}
		seen[n] = s.goal[i]
	}
	return true
}

// report sends n as a solution of length length.
// It can be called concurrently from several goroutines.
func (s *Searcher) report(length int, out vec.Vector, n expr.Node) {
	s.nbSolutions.Add(1)
	s.metrics.ObserveSolution(length)
	if s.out == nil {
		return
	}
	sol := Solution{Length: length, Text: s.arena.Format(n), Output: out}
	s.logger.Debug("solution found", "length", length, "expr", sol.Text)
	s.out <- sol
}
