package search

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/vec"
)

func TestKeepBest(t *testing.T) {
	p := make(partial)
	out := vec.Vector{1, 2}
	p.keepBest(out, expr.Bin(expr.OpAdd, 0, 1, 0))
	p.keepBest(out, expr.Bin(expr.OpLt, 0, 1, 0))
	assert.Equal(t, expr.OpAdd, p[out.Key()].node.Op, "lower precedence must not replace")
	p.keepBest(out, expr.Bin(expr.OpSub, 0, 1, 0))
	assert.Equal(t, expr.OpSub, p[out.Key()].node.Op, "higher tie-break must replace")
	p.keepBest(out, expr.Bin(expr.OpSub, 5, 6, 0))
	assert.Equal(t, expr.Ref(0), p[out.Key()].node.Left, "equal operator must not replace")
	p.keepBest(vec.Vector{2, 1}, expr.Literal(3))
	assert.Len(t, p, 2)
}

// flatten returns the node retained for each output.
func flatten(p partial) map[vec.Key]expr.Node {
	res := make(map[vec.Key]expr.Node, len(p))
	for key, c := range p {
		res[key] = c.node
	}
	return res
}

func TestReduceOrderIndependence(t *testing.T) {
	ops := []expr.Op{expr.OpOr, expr.OpLt, expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpNeg, expr.OpParens}
	rng := rand.New(rand.NewSource(42))
	type insertion struct {
		out  vec.Vector
		node expr.Node
	}
	var all []insertion
	for i := 0; i < 2000; i++ {
		out := vec.Vector{vec.Num(rng.Intn(30)), vec.Num(rng.Intn(3))}
		node := expr.Bin(ops[rng.Intn(len(ops))], expr.Ref(i), expr.Ref(i), 0)
		all = append(all, insertion{out, node})
	}
	want := make(partial)
	for _, ins := range all {
		want.keepBest(ins.out, ins.node)
	}
	for _, nbParts := range []int{1, 2, 3, 7, 64, 2000} {
		for _, parallel := range []bool{false, true} {
			parts := make([]partial, nbParts)
			size := (len(all) + nbParts - 1) / nbParts
			for i := range parts {
				parts[i] = make(partial)
				for _, ins := range all[min(i*size, len(all)):min((i+1)*size, len(all))] {
					parts[i].keepBest(ins.out, ins.node)
				}
			}
			s := &Searcher{workers: 4}
			got := s.reduce(parts, parallel)
			require.Empty(t, cmp.Diff(flatten(want), flatten(got)), "%d parts, parallel=%t", nbParts, parallel)
		}
	}
}

func TestFreeze(t *testing.T) {
	a := expr.NewArena([]string{"x"})
	x := a.Add(expr.Variable(0))
	p := make(partial)
	p.keepBest(vec.Vector{-1, -2}, expr.Un(expr.OpNeg, x, 1))
	p.keepBest(vec.Vector{1, 2}, expr.Literal(7))
	level := freeze(a, p)
	require.Len(t, level, 2)
	assert.Equal(t, 3, a.Len())
	assert.Less(t, string(level[0].Out.Key()), string(level[1].Out.Key()))
	for _, e := range level {
		switch e.Op {
		case expr.OpNeg:
			assert.Equal(t, "-x", a.String(e.Ref))
			assert.False(t, e.safeBefore)
			assert.True(t, e.safeAfter)
			assert.Equal(t, expr.Mask(1), e.Mask)
		case expr.OpLiteral:
			assert.Equal(t, "7", a.String(e.Ref))
			assert.True(t, e.IsLiteral())
			assert.True(t, e.safeBefore)
			assert.False(t, e.safeAfter)
		default:
			t.Errorf("unexpected operator %s", e.Op)
		}
	}
}

func TestShorterIndex(t *testing.T) {
	idx := make(shorterIndex)
	out := vec.Vector{3}
	idx.add([]Entry{{Out: out, Op: expr.OpAdd}})
	idx.add([]Entry{{Out: out, Op: expr.OpLt}})
	assert.True(t, idx.beaten(out.Key(), expr.OpAdd))
	assert.True(t, idx.beaten(out.Key(), expr.OpLt))
	assert.False(t, idx.beaten(out.Key(), expr.OpMul))
	assert.False(t, idx.beaten(vec.Vector{4}.Key(), expr.OpOr))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "UNBUILT", Unbuilt.String())
	assert.Equal(t, "BUILDING", Building.String())
	assert.Equal(t, "FROZEN", Frozen.String())
	assert.Panics(t, func() { _ = State(42).String() })
}
