package expr

import (
	"math"

	"github.com/crillab/shortexpr/vec"
)

// A Ref is the index of a Node in an Arena.
type Ref uint32

// NoRef is the Ref of a missing child.
const NoRef = Ref(math.MaxUint32)

// A Mask is a set of input variables: bit i is set iff variable i is used.
type Mask uint32

// MaxVars is the maximum number of input variables a Mask can describe.
const MaxVars = 32

// A Node is an immutable expression.
// Binary nodes have both children, unary and parenthesized nodes only have a Right child,
// leaves have none.
type Node struct {
	Left  Ref
	Right Ref
	Value vec.Num // For leaves, the literal value or the variable index.
	Mask  Mask    // Variables used in the expression.
	Op    Op
}

// Literal returns a leaf for the constant n.
func Literal(n vec.Num) Node {
	return Node{Left: NoRef, Right: NoRef, Value: n, Op: OpLiteral}
}

// Variable returns a leaf for the i-th input variable.
func Variable(i int) Node {
	return Node{Left: NoRef, Right: NoRef, Value: vec.Num(i), Mask: 1 << uint(i), Op: OpVariable}
}

// Bin returns the binary node "left op right".
// mask is the union of both operand masks.
func Bin(op Op, left, right Ref, mask Mask) Node {
	return Node{Left: left, Right: right, Mask: mask, Op: op}
}

// Un returns the unary node "op operand".
func Un(op Op, operand Ref, mask Mask) Node {
	return Node{Left: NoRef, Right: operand, Mask: mask, Op: op}
}

// Parens returns the node "(inner)".
func Parens(inner Ref, mask Mask) Node {
	return Node{Left: NoRef, Right: inner, Mask: mask, Op: OpParens}
}

// IsLeaf is true iff n is a literal or a variable.
func (n Node) IsLeaf() bool {
	return n.Op.Prec() == PrecLeaf
}

// IsLiteral is true iff n is a constant leaf.
func (n Node) IsLiteral() bool {
	return n.Op == OpLiteral
}
