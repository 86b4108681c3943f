package expr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpOrder(t *testing.T) {
	ops := []Op{OpOr, OpAnd, OpLt, OpBitOr, OpBitXor, OpBitAnd, OpShl, OpAdd, OpMul, OpNeg, OpExp, OpParens, OpVariable}
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1], ops[i])
		assert.Less(t, ops[i-1].Prec(), ops[i].Prec())
	}
	assert.Equal(t, PrecMul, OpGcd.Prec())
	assert.Equal(t, PrecOr, OpSpaceOrSpace.Prec())
	assert.Equal(t, PrecLeaf, OpLiteral.Prec())
}

func TestWidths(t *testing.T) {
	for _, b := range Binaries {
		assert.Equal(t, len(b.Op.Symbol()), b.Width(), "operator %s", b.Name)
		got, ok := BinaryByName(b.Name)
		require.True(t, ok)
		assert.Equal(t, b, got)
	}
	assert.Equal(t, 2, OpOr.Width())
	assert.Equal(t, 3, OpSpaceOr.Width())
	assert.Equal(t, 4, OpSpaceOrSpace.Width())
	assert.Equal(t, 2, OpParens.Width())
	_, ok := BinaryByName("nope")
	assert.False(t, ok)
	u, ok := UnaryByName("bit_neg")
	require.True(t, ok)
	assert.Equal(t, OpBitNeg, u.Op)
}

func TestAdmits(t *testing.T) {
	sub, _ := BinaryByName("sub")
	exp, _ := BinaryByName("exp")
	lt, _ := BinaryByName("lt")
	// x-y-z is (x-y)-z, never x-(y-z).
	assert.True(t, sub.Admits(OpSub, OpVariable))
	assert.False(t, sub.Admits(OpVariable, OpSub))
	// x**y**z is x**(y**z).
	assert.False(t, exp.Admits(OpExp, OpVariable))
	assert.True(t, exp.Admits(OpVariable, OpExp))
	assert.True(t, exp.Admits(OpParens, OpNeg))
	assert.False(t, exp.Admits(OpNeg, OpVariable))
	// a<b<c is a chain, not (a<b)<c.
	assert.False(t, lt.Admits(OpLt, OpVariable))
	assert.True(t, lt.Admits(OpAdd, OpBitOr))
	neg, _ := UnaryByName("neg")
	assert.True(t, neg.Admits(OpNeg))
	assert.True(t, neg.Admits(OpExp))
	assert.False(t, neg.Admits(OpMul))
}

func TestFits(t *testing.T) {
	tests := []struct {
		name                  string
		safeBefore, safeAfter bool
	}{
		{"or", true, true},
		{"space_or", false, true},
		{"or_space", true, false},
		{"space_or_space", false, false},
	}
	for _, test := range tests {
		for _, b := range Binaries[:4] {
			want := b.Name == test.name
			assert.Equal(t, want, b.Fits(test.safeBefore, test.safeAfter), "%s with (%t, %t)", b.Name, test.safeBefore, test.safeAfter)
		}
	}
	add, _ := BinaryByName("add")
	assert.True(t, add.Fits(false, false))
}

func TestArenaChunks(t *testing.T) {
	a := NewArena(nil)
	const nb = 3*chunkSize + 5
	for i := 0; i < nb; i++ {
		require.Equal(t, Ref(i), a.Add(Literal(int32(i))))
	}
	assert.Equal(t, nb, a.Len())
	for _, i := range []int{0, chunkSize - 1, chunkSize, 2*chunkSize + 1, nb - 1} {
		assert.Equal(t, int32(i), a.Get(Ref(i)).Value)
	}
	assert.Panics(t, func() { a.Get(Ref(nb)) })
}

// build returns an arena with x, y, 1, 42 and some compound expressions.
func build() (*Arena, map[string]Node) {
	a := NewArena([]string{"x", "y"})
	x := a.Add(Variable(0))
	y := a.Add(Variable(1))
	one := a.Add(Literal(1))
	n42 := a.Add(Literal(42))
	sum := a.Add(Bin(OpAdd, x, one, 1))
	negY := a.Add(Un(OpNeg, y, 2))
	parSum := a.Add(Parens(sum, 1))
	prod := a.Add(Bin(OpMul, parSum, negY, 3))
	xPow := a.Add(Bin(OpExp, x, n42, 1))
	nodes := map[string]Node{
		"x":         a.Get(x),
		"42":        a.Get(n42),
		"x+1":       a.Get(sum),
		"-y":        a.Get(negY),
		"(x+1)":     a.Get(parSum),
		"(x+1)*-y":  a.Get(prod),
		"x**42":     a.Get(xPow),
		"1or(x+1)":  Bin(OpOr, one, parSum, 1),
		"x or-y":    Bin(OpSpaceOr, x, negY, 3),
		"42or x":    Bin(OpOrSpace, n42, x, 1),
		"x and y":   Bin(OpSpaceAndSpace, x, y, 3),
		"~(x+1)":    Un(OpBitNeg, parSum, 1),
		"-y<=x**42": Bin(OpLe, negY, xPow, 3),
	}
	return a, nodes
}

func TestFormat(t *testing.T) {
	a, nodes := build()
	for text, n := range nodes {
		assert.Equal(t, text, a.Format(n))
		assert.Equal(t, len(text), a.Length(n), "length of %q", text)
	}
	assert.Equal(t, "x", a.String(0))
}

func TestKeywordSafety(t *testing.T) {
	a, nodes := build()
	tests := []struct {
		text          string
		before, after bool
	}{
		{"x", false, false},
		{"42", true, false},
		{"x+1", true, false},
		{"-y", false, true},
		{"(x+1)", true, true},
		{"(x+1)*-y", false, true},
		{"x**42", true, false},
		{"~(x+1)", true, true},
	}
	for _, test := range tests {
		n := nodes[test.text]
		assert.Equal(t, test.before, a.SafeBeforeKeyword(n), "safe before keyword: %q", test.text)
		assert.Equal(t, test.after, a.SafeAfterKeyword(n), "safe after keyword: %q", test.text)
	}
}

func ExampleArena_Format() {
	a := NewArena([]string{"x"})
	x := a.Add(Variable(0))
	one := a.Add(Literal(1))
	sum := a.Add(Bin(OpAdd, x, one, 1))
	p := Parens(sum, 1)
	fmt.Println(a.Format(p), a.Length(p))
	// Output: (x+1) 5
}
