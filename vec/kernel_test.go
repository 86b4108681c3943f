package vec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivMod(t *testing.T) {
	tests := []struct {
		a, b     Num
		floor    bool
		div, mod Num
	}{
		{-21, 4, false, -5, -1},
		{-21, 4, true, -6, 3},
		{21, -4, false, -5, 1},
		{21, -4, true, -6, -3},
		{-21, -4, true, 5, -1},
		{20, 4, true, 5, 0},
		{-20, 4, true, -5, 0},
		{math.MinInt32, 3, true, -715827883, 1},
		{math.MinInt32, 1, true, math.MinInt32, 0},
	}
	for _, test := range tests {
		div, mod, ok := divMod(test.a, test.b, test.floor)
		require.True(t, ok, "divmod(%d, %d)", test.a, test.b)
		assert.Equal(t, test.div, div, "div(%d, %d), floor=%t", test.a, test.b, test.floor)
		assert.Equal(t, test.mod, mod, "mod(%d, %d), floor=%t", test.a, test.b, test.floor)
	}
}

func TestDivModUndefined(t *testing.T) {
	for _, floor := range []bool{false, true} {
		k := New(Options{Floor: floor})
		_, _, ok := k.DivMod(Vector{1, 2, 3}, Vector{1, 0, 1})
		assert.False(t, ok, "division by zero must be undefined")
		_, _, ok = k.DivMod(Vector{math.MinInt32}, Vector{-1})
		assert.False(t, ok, "overflowing division must be undefined")
		div, mod, ok := k.DivMod(Vector{7, -7}, Vector{2, 2})
		require.True(t, ok)
		if floor {
			assert.Equal(t, Vector{3, -4}, div)
			assert.Equal(t, Vector{1, 1}, mod)
		} else {
			assert.Equal(t, Vector{3, -3}, div)
			assert.Equal(t, Vector{1, -1}, mod)
		}
	}
}

func TestTotalOperators(t *testing.T) {
	k := New(Options{Floor: true})
	a := Vector{0, 5, -3, math.MaxInt32}
	b := Vector{2, 0, -3, 1}
	assert.Equal(t, Vector{2, 5, -6, math.MinInt32}, k.Add(a, b))
	assert.Equal(t, Vector{-2, 5, 0, math.MaxInt32 - 1}, k.Sub(a, b))
	assert.Equal(t, Vector{0, 0, 9, math.MaxInt32}, k.Mul(a, b))
	assert.Equal(t, Vector{2, 5, -3, math.MaxInt32}, k.BitOr(a, b))
	assert.Equal(t, Vector{2, 5, 0, math.MaxInt32 - 1}, k.BitXor(a, b))
	assert.Equal(t, Vector{0, 0, -3, 1}, k.BitAnd(a, b))
	assert.Equal(t, Vector{1, 0, 0, 0}, k.Lt(a, b))
	assert.Equal(t, Vector{1, 0, 1, 0}, k.Le(a, b))
	assert.Equal(t, Vector{0, 1, 0, 1}, k.Gt(a, b))
	assert.Equal(t, Vector{0, 1, 1, 1}, k.Ge(a, b))
	assert.Equal(t, Vector{0, 0, 1, 0}, k.Eq(a, b))
	assert.Equal(t, Vector{1, 1, 0, 1}, k.Ne(a, b))
	assert.Equal(t, Vector{2, 5, -3, math.MaxInt32}, k.Or(a, b))
	assert.Equal(t, Vector{0, 0, -3, 1}, k.And(a, b))
	assert.Equal(t, Vector{0, -5, 3, -math.MaxInt32}, k.Neg(a))
	assert.Equal(t, Vector{-1, -6, 2, math.MinInt32}, k.BitNeg(a))
	assert.Equal(t, Vector{math.MinInt32}, k.Neg(Vector{math.MinInt32}))
}

func TestGcd(t *testing.T) {
	k := New(Options{})
	assert.Equal(t,
		Vector{6, 6, 6, 0, 5, 1, math.MinInt32},
		k.Gcd(Vector{12, -12, 12, 0, 0, 7, math.MinInt32}, Vector{18, 18, -18, 0, 5, 13, 0}))
}

func TestShifts(t *testing.T) {
	k := New(Options{})
	res, ok := k.Shl(Vector{1, -1, 3}, Vector{0, 31, 2})
	require.True(t, ok)
	assert.Equal(t, Vector{1, math.MinInt32, 12}, res)
	res, ok = k.Shr(Vector{-8, 8, math.MinInt32}, Vector{1, 3, 31})
	require.True(t, ok)
	assert.Equal(t, Vector{-4, 1, -1}, res)
	_, ok = k.Shl(Vector{1, 1}, Vector{1, 32})
	assert.False(t, ok)
	_, ok = k.Shr(Vector{1, 1}, Vector{-1, 1})
	assert.False(t, ok)
}

func TestPow(t *testing.T) {
	k := New(Options{})
	res, ok := k.Pow(Vector{2, -3, 0, 0, 1000}, Vector{6, 3, 0, 2, 4})
	require.True(t, ok)
	assert.Equal(t, Vector{64, -27, 1, 0, -727379968}, res)
	_, ok = k.Pow(Vector{2}, Vector{7})
	assert.False(t, ok)
	_, ok = k.Pow(Vector{2}, Vector{-1})
	assert.False(t, ok)
}

func TestSentinel(t *testing.T) {
	e := Num(-159236)
	k := New(Options{Floor: true, ErrorValue: &e})
	div, mod, ok := k.DivMod(Vector{1, 7, e}, Vector{0, 2, 2})
	require.True(t, ok)
	assert.Equal(t, Vector{e, 3, e}, div)
	assert.Equal(t, Vector{e, 1, e}, mod)
	assert.Equal(t, Vector{e, 4}, k.Mul(Vector{e, 2}, Vector{2, 2}))
	assert.Equal(t, Vector{e, 0}, k.Lt(Vector{1, 2}, Vector{e, 1}))
	assert.Equal(t, Vector{e}, k.Neg(Vector{e}))
	res, ok := k.Shl(Vector{1, 1}, Vector{32, 1})
	require.True(t, ok)
	assert.Equal(t, Vector{e, 2}, res)
	res, ok = k.Pow(Vector{2, 2}, Vector{7, 2})
	require.True(t, ok)
	assert.Equal(t, Vector{e, 4}, res)
}

func TestKey(t *testing.T) {
	vs := []Vector{{}, {0}, {1, 2, 3}, {-1, math.MinInt32, math.MaxInt32}}
	seen := make(map[Key]bool)
	for _, v := range vs {
		k := v.Key()
		assert.False(t, seen[k], "duplicate key for %v", v)
		seen[k] = true
		assert.True(t, v.Equal(k.Vector()), "%v does not round trip", v)
	}
	assert.Equal(t, Vector{1, 2}.Key(), Vector{1, 2}.Key())
	assert.NotEqual(t, Vector{1, 2}.Key(), Vector{2, 1}.Key())
}

func ExampleKernel_DivMod() {
	for _, floor := range []bool{false, true} {
		k := New(Options{Floor: floor})
		div, mod, _ := k.DivMod(Vector{-21}, Vector{4})
		fmt.Printf("floor=%t div=%v mod=%v\n", floor, div, mod)
	}
	// Output:
	// floor=false div=(-5) mod=(-1)
	// floor=true div=(-6) mod=(3)
}
