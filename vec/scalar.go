package vec

import "math"

// This file holds the per-element semantics of every operator.
// Vector-level kernels only iterate over them.

const (
	MaxShift    = 31 // Shift amounts must lie in [0, MaxShift]
	MaxExponent = 6  // Exponents must lie in [0, MaxExponent]
)

func b2n(b bool) Num {
	if b {
		return 1
	}
	return 0
}

// divMod returns the quotient and remainder of a by b.
// If floor is true, the quotient is rounded toward negative infinity and the remainder
// has the sign of b; else the quotient is truncated and the remainder has the sign of a.
// ok is false if b is 0 or if the quotient overflows.
func divMod(a, b Num, floor bool) (div, mod Num, ok bool) {
	if b == 0 || (a == math.MinInt32 && b == -1) {
		return 0, 0, false
	}
	div, mod = a/b, a%b
	if floor && mod != 0 && (mod < 0) != (b < 0) {
		div--
		mod += b
	}
	return div, mod, true
}

// gcd returns the greatest common divisor of |a| and |b|.
// gcd(0, 0) is 0; a divisor of 2^31 wraps to math.MinInt32.
func gcd(a, b Num) Num {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	return Num(x)
}

func magnitude(a Num) uint32 {
	if a < 0 {
		return uint32(-int64(a))
	}
	return uint32(a)
}

func shl(a, b Num) (Num, bool) {
	if b < 0 || b > MaxShift {
		return 0, false
	}
	return a << uint(b), true
}

func shr(a, b Num) (Num, bool) {
	if b < 0 || b > MaxShift {
		return 0, false
	}
	return a >> uint(b), true
}

// pow computes a**b with wraparound.
func pow(a, b Num) (Num, bool) {
	if b < 0 || b > MaxExponent {
		return 0, false
	}
	res := Num(1)
	for i := Num(0); i < b; i++ {
		res *= a
	}
	return res, true
}

// or is the keyword "or": a if a is truthy, b otherwise.
func or(a, b Num) Num {
	if a != 0 {
		return a
	}
	return b
}

// and is the keyword "and": a if a is falsy, b otherwise.
func and(a, b Num) Num {
	if a == 0 {
		return a
	}
	return b
}
