package expr

// Spacing indicates whether a keyword operator must be separated from its operands
// by a space, so that it does not merge with them in a single token.
type Spacing byte

const (
	// NotKeyword operators never merge with their operands.
	NotKeyword = Spacing(iota)
	// Glued keywords are written without any space, e.g "1or(x)".
	Glued
	// SpaceBefore keywords are preceded by a space, e.g "x or-y".
	SpaceBefore
	// SpaceAfter keywords are followed by a space, e.g "1or x".
	SpaceAfter
	// SpaceBoth keywords are surrounded by spaces, e.g "x or y".
	SpaceBoth
)

// A Binary describes a binary operator.
// A binary expression "l op r" can only be built if the class of l is at least Left
// and the class of r is strictly greater than Right.
// Requiring a strict bound on one side only gives every chain of operators
// a single canonical grouping.
type Binary struct {
	Op      Op
	Name    string // Name used in configuration files.
	Left    Prec
	Right   Prec
	Spacing Spacing
}

// Width is the number of characters the operator adds to an expression.
func (b Binary) Width() int {
	return b.Op.Width()
}

// Admits is true iff expressions whose top operators are left and right
// can be operands of b without parentheses.
func (b Binary) Admits(left, right Op) bool {
	return left.Prec() >= b.Left && right.Prec() > b.Right
}

// Fits is true iff b is the spacing variant to use between a left operand that
// is (or not) safe before a keyword and a right operand that is (or not) safe after a keyword.
// For non-keyword operators, it is always true.
func (b Binary) Fits(safeBefore, safeAfter bool) bool {
	switch b.Spacing {
	case NotKeyword:
		return true
	case Glued:
		return safeBefore && safeAfter
	case SpaceBefore:
		return !safeBefore && safeAfter
	case SpaceAfter:
		return safeBefore && !safeAfter
	case SpaceBoth:
		return !safeBefore && !safeAfter
	default:
		panic("invalid spacing")
	}
}

// A Unary describes a prefix operator.
type Unary struct {
	Op   Op
	Name string
}

// Admits is true iff an expression whose top operator is operand can be
// written right after u without parentheses.
func (u Unary) Admits(operand Op) bool {
	return operand.Prec() >= PrecUnary
}

// Binaries is the list of all supported binary operators.
var Binaries = []Binary{
	{OpOr, "or", PrecOr, PrecOr, Glued},
	{OpSpaceOr, "space_or", PrecOr, PrecOr, SpaceBefore},
	{OpOrSpace, "or_space", PrecOr, PrecOr, SpaceAfter},
	{OpSpaceOrSpace, "space_or_space", PrecOr, PrecOr, SpaceBoth},
	{OpAnd, "and", PrecAnd, PrecAnd, Glued},
	{OpSpaceAnd, "space_and", PrecAnd, PrecAnd, SpaceBefore},
	{OpAndSpace, "and_space", PrecAnd, PrecAnd, SpaceAfter},
	{OpSpaceAndSpace, "space_and_space", PrecAnd, PrecAnd, SpaceBoth},
	// Comparisons chain, so their left operand must not be a comparison.
	{OpLt, "lt", PrecBitOr, PrecCompare, NotKeyword},
	{OpLe, "le", PrecBitOr, PrecCompare, NotKeyword},
	{OpGt, "gt", PrecBitOr, PrecCompare, NotKeyword},
	{OpGe, "ge", PrecBitOr, PrecCompare, NotKeyword},
	{OpEq, "eq", PrecBitOr, PrecCompare, NotKeyword},
	{OpNe, "ne", PrecBitOr, PrecCompare, NotKeyword},
	{OpBitOr, "bit_or", PrecBitOr, PrecBitOr, NotKeyword},
	{OpBitXor, "bit_xor", PrecBitXor, PrecBitXor, NotKeyword},
	{OpBitAnd, "bit_and", PrecBitAnd, PrecBitAnd, NotKeyword},
	{OpShl, "shl", PrecShift, PrecShift, NotKeyword},
	{OpShr, "shr", PrecShift, PrecShift, NotKeyword},
	{OpAdd, "add", PrecAdd, PrecAdd, NotKeyword},
	{OpSub, "sub", PrecAdd, PrecAdd, NotKeyword},
	{OpMul, "mul", PrecMul, PrecMul, NotKeyword},
	{OpMod, "mod", PrecMul, PrecMul, NotKeyword},
	{OpDiv, "div", PrecMul, PrecMul, NotKeyword},
	{OpFloorDiv, "floor_div", PrecMul, PrecMul, NotKeyword},
	{OpGcd, "gcd", PrecMul, PrecMul, NotKeyword},
	// Exponentiation is right-associative and binds less than a unary operator on its right.
	{OpExp, "exp", PrecParens, PrecMul, NotKeyword},
}

// Unaries is the list of all supported unary operators.
var Unaries = []Unary{
	{OpNeg, "neg"},
	{OpBitNeg, "bit_neg"},
}

// BinaryByName returns the binary operator with the given name, if any.
func BinaryByName(name string) (Binary, bool) {
	for _, b := range Binaries {
		if b.Name == name {
			return b, true
		}
	}
	return Binary{}, false
}

// UnaryByName returns the unary operator with the given name, if any.
func UnaryByName(name string) (Unary, bool) {
	for _, u := range Unaries {
		if u.Name == name {
			return u, true
		}
	}
	return Unary{}, false
}
