package search

import (
	"sort"

	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/vec"
)

// An Entry is the expression retained for a given output in a frozen level.
type Entry struct {
	Out  vec.Vector
	Ref  expr.Ref
	Op   expr.Op
	Mask expr.Mask
	// Whether a keyword can be glued after (resp. before) the expression.
	safeBefore bool
	safeAfter  bool
}

// IsLiteral is true iff the entry is a constant leaf.
func (e Entry) IsLiteral() bool {
	return e.Op == expr.OpLiteral
}

// A candidate is an expression not stored in the arena yet.
type candidate struct {
	out  vec.Vector
	node expr.Node
}

// A partial is a level under construction, owned by a single goroutine.
// It holds at most one candidate per output.
type partial map[vec.Key]candidate

// keepBest inserts the candidate unless an expression with the same output
// and a greater or equal operator is already there.
func (p partial) keepBest(out vec.Vector, n expr.Node) {
	p.keepBestKey(out.Key(), candidate{out: out, node: n})
}

func (p partial) keepBestKey(key vec.Key, c candidate) {
	if old, ok := p[key]; !ok || c.node.Op > old.node.Op {
		p[key] = c
	}
}

// merge returns the union of p1 and p2, keeping the best expression for each output.
// When both have the same operator, the one from p1 wins.
// The smaller map is folded into the larger, which is returned; the other must not be used anymore.
func merge(p1, p2 partial) partial {
	if len(p1) >= len(p2) {
		for key, c := range p2 {
			p1.keepBestKey(key, c)
		}
		return p1
	}
	for key, c := range p1 {
		if old, ok := p2[key]; !ok || c.node.Op >= old.node.Op {
			p2[key] = c
		}
	}
	return p2
}

// freeze stores every candidate of p in the arena and returns the resulting level, sorted by output.
// It must not be called concurrently with anything reading the arena.
func freeze(a *expr.Arena, p partial) []Entry {
	keys := make([]vec.Key, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	level := make([]Entry, len(keys))
	for i, key := range keys {
		c := p[key]
		level[i] = Entry{
			Out:        c.out,
			Ref:        a.Add(c.node),
			Op:         c.node.Op,
			Mask:       c.node.Mask,
			safeBefore: a.SafeBeforeKeyword(c.node),
			safeAfter:  a.SafeAfterKeyword(c.node),
		}
	}
	return level
}

// shorterIndex records, for each output, the best operator of the expressions
// of the shortest levels yielding it.
// It is only modified between levels, so it can be read concurrently while a level is being built.
type shorterIndex map[vec.Key]expr.Op

func (idx shorterIndex) add(level []Entry) {
	for _, e := range level {
		key := e.Out.Key()
		if op, ok := idx[key]; !ok || e.Op > op {
			idx[key] = e.Op
		}
	}
}

// beaten is true iff a shorter expression yields out with an operator at least as good as op.
func (idx shorterIndex) beaten(key vec.Key, op expr.Op) bool {
	best, ok := idx[key]
	return ok && best >= op
}
