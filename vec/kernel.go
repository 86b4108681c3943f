package vec

// A Kernel implements every vector operator.
// The search engine only depends on this interface, so that alternative backends
// (batched, lane-parallel...) can be plugged in without changing it.
// Implementations must be safe for concurrent use and must never modify their arguments.
type Kernel interface {
	Add(a, b Vector) Vector
	Sub(a, b Vector) Vector
	Mul(a, b Vector) Vector
	BitOr(a, b Vector) Vector
	BitXor(a, b Vector) Vector
	BitAnd(a, b Vector) Vector
	Lt(a, b Vector) Vector
	Le(a, b Vector) Vector
	Gt(a, b Vector) Vector
	Ge(a, b Vector) Vector
	Eq(a, b Vector) Vector
	Ne(a, b Vector) Vector
	Or(a, b Vector) Vector  // keyword or
	And(a, b Vector) Vector // keyword and
	Gcd(a, b Vector) Vector
	Neg(a Vector) Vector
	BitNeg(a Vector) Vector
	// DivMod computes quotient and remainder in a single pass.
	// ok is false if any position is undefined.
	DivMod(a, b Vector) (div, mod Vector, ok bool)
	Shl(a, b Vector) (Vector, bool)
	Shr(a, b Vector) (Vector, bool)
	Pow(a, b Vector) (Vector, bool)
}

// Options describe the semantics of a kernel.
type Options struct {
	Floor      bool // Floor division & modulo if true, truncating else.
	ErrorValue *Num // If non nil, partial operators become total and yield this value when undefined.
}

// New returns the kernel matching the given options.
func New(opts Options) Kernel {
	if opts.ErrorValue != nil {
		return &Sentinel{Floor: opts.Floor, Err: *opts.ErrorValue}
	}
	return &Strict{Floor: opts.Floor}
}

type binFunc func(a, b Num) Num

type partialFunc func(a, b Num) (Num, bool)

var (
	add    binFunc = func(a, b Num) Num { return a + b }
	sub    binFunc = func(a, b Num) Num { return a - b }
	mul    binFunc = func(a, b Num) Num { return a * b }
	bitOr  binFunc = func(a, b Num) Num { return a | b }
	bitXor binFunc = func(a, b Num) Num { return a ^ b }
	bitAnd binFunc = func(a, b Num) Num { return a & b }
	lt     binFunc = func(a, b Num) Num { return b2n(a < b) }
	le     binFunc = func(a, b Num) Num { return b2n(a <= b) }
	gt     binFunc = func(a, b Num) Num { return b2n(a > b) }
	ge     binFunc = func(a, b Num) Num { return b2n(a >= b) }
	eq     binFunc = func(a, b Num) Num { return b2n(a == b) }
	ne     binFunc = func(a, b Num) Num { return b2n(a != b) }
)

func zip(a, b Vector, f binFunc) Vector {
	res := make(Vector, len(a))
	for i := range a {
		res[i] = f(a[i], b[i])
	}
	return res
}

// Strict is the kernel in which partial operators are undefined as soon as
// one position is undefined.
type Strict struct {
	Floor bool
}

func (k *Strict) Add(a, b Vector) Vector    { return zip(a, b, add) }
func (k *Strict) Sub(a, b Vector) Vector    { return zip(a, b, sub) }
func (k *Strict) Mul(a, b Vector) Vector    { return zip(a, b, mul) }
func (k *Strict) BitOr(a, b Vector) Vector  { return zip(a, b, bitOr) }
func (k *Strict) BitXor(a, b Vector) Vector { return zip(a, b, bitXor) }
func (k *Strict) BitAnd(a, b Vector) Vector { return zip(a, b, bitAnd) }
func (k *Strict) Lt(a, b Vector) Vector     { return zip(a, b, lt) }
func (k *Strict) Le(a, b Vector) Vector     { return zip(a, b, le) }
func (k *Strict) Gt(a, b Vector) Vector     { return zip(a, b, gt) }
func (k *Strict) Ge(a, b Vector) Vector     { return zip(a, b, ge) }
func (k *Strict) Eq(a, b Vector) Vector     { return zip(a, b, eq) }
func (k *Strict) Ne(a, b Vector) Vector     { return zip(a, b, ne) }
func (k *Strict) Or(a, b Vector) Vector     { return zip(a, b, or) }
func (k *Strict) And(a, b Vector) Vector    { return zip(a, b, and) }
func (k *Strict) Gcd(a, b Vector) Vector    { return zip(a, b, gcd) }

func (k *Strict) Neg(a Vector) Vector {
	return a.Map(func(n Num) Num { return -n })
}

func (k *Strict) BitNeg(a Vector) Vector {
	return a.Map(func(n Num) Num { return ^n })
}

func (k *Strict) DivMod(a, b Vector) (div, mod Vector, ok bool) {
	div = make(Vector, len(a))
	mod = make(Vector, len(a))
	for i := range a {
		if div[i], mod[i], ok = divMod(a[i], b[i], k.Floor); !ok {
			return nil, nil, false
		}
	}
	return div, mod, true
}

func (k *Strict) partial(a, b Vector, f partialFunc) (Vector, bool) {
	res := make(Vector, len(a))
	var ok bool
	for i := range a {
		if res[i], ok = f(a[i], b[i]); !ok {
			return nil, false
		}
	}
	return res, true
}

func (k *Strict) Shl(a, b Vector) (Vector, bool) {
	if !b.In(0, MaxShift) {
		return nil, false
	}
	return k.partial(a, b, shl)
}

func (k *Strict) Shr(a, b Vector) (Vector, bool) {
	if !b.In(0, MaxShift) {
		return nil, false
	}
	return k.partial(a, b, shr)
}

func (k *Strict) Pow(a, b Vector) (Vector, bool) {
	if !b.In(0, MaxExponent) {
		return nil, false
	}
	return k.partial(a, b, pow)
}

// Sentinel is the kernel in which every operator is total.
// Undefined positions yield Err, and Err absorbs every operator it is given to,
// so that errors never resurface as regular values.
type Sentinel struct {
	Floor bool
	Err   Num
}

func (k *Sentinel) zip(a, b Vector, f binFunc) Vector {
	res := make(Vector, len(a))
	for i := range a {
		if a[i] == k.Err || b[i] == k.Err {
			res[i] = k.Err
		} else {
			res[i] = f(a[i], b[i])
		}
	}
	return res
}

func (k *Sentinel) partial(a, b Vector, f partialFunc) Vector {
	return k.zip(a, b, func(x, y Num) Num {
		if res, ok := f(x, y); ok {
			return res
		}
		return k.Err
	})
}

func (k *Sentinel) unary(a Vector, f func(Num) Num) Vector {
	return a.Map(func(n Num) Num {
		if n == k.Err {
			return n
		}
		return f(n)
	})
}

func (k *Sentinel) Add(a, b Vector) Vector    { return k.zip(a, b, add) }
func (k *Sentinel) Sub(a, b Vector) Vector    { return k.zip(a, b, sub) }
func (k *Sentinel) Mul(a, b Vector) Vector    { return k.zip(a, b, mul) }
func (k *Sentinel) BitOr(a, b Vector) Vector  { return k.zip(a, b, bitOr) }
func (k *Sentinel) BitXor(a, b Vector) Vector { return k.zip(a, b, bitXor) }
func (k *Sentinel) BitAnd(a, b Vector) Vector { return k.zip(a, b, bitAnd) }
func (k *Sentinel) Lt(a, b Vector) Vector     { return k.zip(a, b, lt) }
func (k *Sentinel) Le(a, b Vector) Vector     { return k.zip(a, b, le) }
func (k *Sentinel) Gt(a, b Vector) Vector     { return k.zip(a, b, gt) }
func (k *Sentinel) Ge(a, b Vector) Vector     { return k.zip(a, b, ge) }
func (k *Sentinel) Eq(a, b Vector) Vector     { return k.zip(a, b, eq) }
func (k *Sentinel) Ne(a, b Vector) Vector     { return k.zip(a, b, ne) }
func (k *Sentinel) Or(a, b Vector) Vector     { return k.zip(a, b, or) }
func (k *Sentinel) And(a, b Vector) Vector    { return k.zip(a, b, and) }
func (k *Sentinel) Gcd(a, b Vector) Vector    { return k.zip(a, b, gcd) }

func (k *Sentinel) Neg(a Vector) Vector {
	return k.unary(a, func(n Num) Num { return -n })
}

func (k *Sentinel) BitNeg(a Vector) Vector {
	return k.unary(a, func(n Num) Num { return ^n })
}

func (k *Sentinel) DivMod(a, b Vector) (div, mod Vector, ok bool) {
	div = make(Vector, len(a))
	mod = make(Vector, len(a))
	for i := range a {
		if a[i] == k.Err || b[i] == k.Err {
			div[i], mod[i] = k.Err, k.Err
			continue
		}
		d, m, ok := divMod(a[i], b[i], k.Floor)
		if !ok {
			d, m = k.Err, k.Err
		}
		div[i], mod[i] = d, m
	}
	return div, mod, true
}

func (k *Sentinel) Shl(a, b Vector) (Vector, bool) { return k.partial(a, b, shl), true }
func (k *Sentinel) Shr(a, b Vector) (Vector, bool) { return k.partial(a, b, shr), true }
func (k *Sentinel) Pow(a, b Vector) (Vector, bool) { return k.partial(a, b, pow), true }
