package search

import (
	"sort"
	"strconv"

	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/vec"
)

// unitSize is the # of right operands processed by a single composition task.
const unitSize = 64

// An opGroup is a set of binary operators having the same width.
type opGroup struct {
	width int
	ops   []expr.Binary
}

// groupByWidth returns the groups of the given operators, sorted by increasing width.
func groupByWidth(ops []expr.Binary) []opGroup {
	var groups []opGroup
	for _, b := range ops {
		i := sort.Search(len(groups), func(i int) bool { return groups[i].width >= b.Width() })
		if i == len(groups) || groups[i].width != b.Width() {
			groups = append(groups, opGroup{})
			copy(groups[i+1:], groups[i:])
			groups[i] = opGroup{width: b.Width()}
		}
		groups[i].ops = append(groups[i].ops, b)
	}
	return groups
}

// A task computes a part of a level.
type task func() partial

// tasks returns the list of tasks whose union is level n, base cases excepted.
// The list only depends on the content of shorter levels.
func (s *Searcher) tasks(n int) []task {
	var tasks []task
	for k := 1; k < n; k++ {
		k := k
		right := s.levels[k]
		for lo := 0; lo < len(right); lo += unitSize {
			rights := right[lo:min(lo+unitSize, len(right))]
			tasks = append(tasks, func() partial { return s.compose(n, k, rights) })
		}
	}
	if n >= 3 && n < s.cfg.MaxLength {
		tasks = append(tasks, func() partial { return s.parenthesize(n) })
	}
	if n >= 2 && len(s.unaries) > 0 {
		tasks = append(tasks, func() partial { return s.applyUnaries(n) })
	}
	return tasks
}

// compose builds the binary expressions of length n whose right operand is one of rights,
// of length k.
func (s *Searcher) compose(n, k int, rights []Entry) partial {
	p := make(partial)
	for _, r := range rights {
		for _, g := range s.binaries {
			l := n - k - g.width
			if l < 1 {
				break
			}
			for _, left := range s.levels[l] {
				if left.IsLiteral() && r.IsLiteral() {
					continue
				}
				if both := left.Mask & r.Mask; both != 0 && (!s.cfg.ReuseVars || both&s.single != 0) {
					continue
				}
				mask := left.Mask | r.Mask
				ev := pair{k: s.kernel, a: left.Out, b: r.Out}
				for _, b := range g.ops {
					if !b.Admits(left.Op, r.Op) || !b.Fits(left.safeBefore, r.safeAfter) {
						continue
					}
					if out, ok := ev.apply(b.Op); ok {
						s.save(p, n, out, expr.Bin(b.Op, left.Ref, r.Ref, mask))
					}
				}
			}
		}
	}
	return p
}

// parenthesize wraps every expression of length n-2 that is not already a parenthesized expression or a leaf.
// Those are kept even if a shorter expression yields the same output.
func (s *Searcher) parenthesize(n int) partial {
	p := make(partial)
	for _, e := range s.levels[n-2] {
		if e.Op < expr.OpParens {
			p.keepBest(e.Out, expr.Parens(e.Ref, e.Mask))
		}
	}
	return p
}

func (s *Searcher) applyUnaries(n int) partial {
	p := make(partial)
	for _, e := range s.levels[n-1] {
		for _, u := range s.unaries {
			if !u.Admits(e.Op) {
				continue
			}
			var out vec.Vector
			switch u.Op {
			case expr.OpNeg:
				out = s.kernel.Neg(e.Out)
			case expr.OpBitNeg:
				out = s.kernel.BitNeg(e.Out)
			default:
				panic("invalid unary operator")
			}
			s.save(p, n, out, expr.Un(u.Op, e.Ref, e.Mask))
		}
	}
	return p
}

// addBaseCases adds to p the variables and literals of length n.
// They are kept even if a shorter expression yields the same output.
func (s *Searcher) addBaseCases(n int, p partial) {
	for i, in := range s.inputs {
		if in.Unused() || len(in.Name) != n {
			continue
		}
		s.addLeaf(n, p, vec.Vector(in.Values), expr.Variable(i))
	}
	for _, lit := range s.literals {
		if len(strconv.Itoa(int(lit))) == n {
			s.addLeaf(n, p, vec.Constant(lit, len(s.goal)), expr.Literal(lit))
		}
	}
}

func (s *Searcher) addLeaf(n int, p partial, out vec.Vector, leaf expr.Node) {
	if s.matches(out, leaf.Mask) {
		s.report(n, out, leaf)
	}
	p.keepBest(out, leaf)
}

// save reports the candidate if it is a solution, and else adds it to p
// if it can be useful to build longer expressions.
func (s *Searcher) save(p partial, n int, out vec.Vector, node expr.Node) {
	if !s.cfg.ReuseVars && node.Mask == s.allMask && !s.functional(out) {
		return
	}
	if s.matches(out, node.Mask) {
		s.report(n, out, node)
		return
	}
	// Only a unary operator can extend an expression of length max-1.
	if n == s.cfg.MaxLength || n == s.cfg.MaxLength-1 && node.Op.Prec() < expr.PrecUnary {
		return
	}
	key := out.Key()
	if s.shorter.beaten(key, node.Op) {
		return
	}
	p.keepBestKey(key, candidate{out: out, node: node})
}

// A pair evaluates binary operators on a given pair of operands.
// The quotient and remainder are computed at most once.
type pair struct {
	k    vec.Kernel
	a, b vec.Vector

	divDone bool
	divOK   bool
	div     vec.Vector
	mod     vec.Vector
}

func (p *pair) divMod() (div, mod vec.Vector, ok bool) {
	if !p.divDone {
		p.div, p.mod, p.divOK = p.k.DivMod(p.a, p.b)
		p.divDone = true
	}
	return p.div, p.mod, p.divOK
}

// apply returns the output of "a op b". ok is false if the operator cannot be applied.
func (p *pair) apply(op expr.Op) (res vec.Vector, ok bool) {
	k, a, b := p.k, p.a, p.b
	switch op {
	case expr.OpOr, expr.OpSpaceOr, expr.OpOrSpace, expr.OpSpaceOrSpace:
		return k.Or(a, b), true
	case expr.OpAnd, expr.OpSpaceAnd, expr.OpAndSpace, expr.OpSpaceAndSpace:
		return k.And(a, b), true
	case expr.OpLt:
		return k.Lt(a, b), true
	case expr.OpLe:
		return k.Le(a, b), true
	case expr.OpGt:
		return k.Gt(a, b), true
	case expr.OpGe:
		return k.Ge(a, b), true
	case expr.OpEq:
		return k.Eq(a, b), true
	case expr.OpNe:
		return k.Ne(a, b), true
	case expr.OpBitOr:
		return k.BitOr(a, b), true
	case expr.OpBitXor:
		return k.BitXor(a, b), true
	case expr.OpBitAnd:
		return k.BitAnd(a, b), true
	case expr.OpShl:
		return k.Shl(a, b)
	case expr.OpShr:
		return k.Shr(a, b)
	case expr.OpAdd:
		return k.Add(a, b), true
	case expr.OpSub:
		return k.Sub(a, b), true
	case expr.OpMul:
		return k.Mul(a, b), true
	case expr.OpMod:
		_, mod, ok := p.divMod()
		return mod, ok
	case expr.OpDiv, expr.OpFloorDiv:
		div, _, ok := p.divMod()
		return div, ok
	case expr.OpGcd:
		return k.Gcd(a, b), true
	case expr.OpExp:
		return k.Pow(a, b)
	default:
		panic("invalid binary operator")
	}
}
