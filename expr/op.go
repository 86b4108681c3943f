package expr

// Describes operator codes, their precedence and their textual representation.

// Prec is the precedence class of an operator, i.e how tightly it binds its operands.
// The higher, the tighter.
type Prec uint8

const (
	PrecOr      Prec = 3  // keyword "or"
	PrecAnd     Prec = 4  // keyword "and"
	PrecCompare Prec = 5  // <, <=, >, >=, ==, !=
	PrecBitOr   Prec = 6  // |
	PrecBitXor  Prec = 7  // ^
	PrecBitAnd  Prec = 8  // &
	PrecShift   Prec = 9  // <<, >>
	PrecAdd     Prec = 10 // +, -
	PrecMul     Prec = 11 // *, %, /, //, @
	PrecUnary   Prec = 12 // unary -, ~
	PrecExp     Prec = 13 // **
	PrecParens  Prec = 14 // (...)
	PrecLeaf    Prec = 15 // literals and variables
)

// An Op is an operator code.
// Its 4 upper bits are its precedence class, its 4 lower bits a tie-break
// distinguishing operators of the same class.
// Comparing two Op values thus compares their (class, tie-break) pairs.
type Op uint8

// Prec returns the precedence class of op.
func (op Op) Prec() Prec {
	return Prec(op >> 4)
}

const (
	OpOr           = Op(PrecOr << 4)
	OpSpaceOr      = OpOr + 1
	OpOrSpace      = OpOr + 2
	OpSpaceOrSpace = OpOr + 3

	OpAnd           = Op(PrecAnd << 4)
	OpSpaceAnd      = OpAnd + 1
	OpAndSpace      = OpAnd + 2
	OpSpaceAndSpace = OpAnd + 3

	OpLt = Op(PrecCompare << 4)
	OpLe = OpLt + 1
	OpGt = OpLt + 2
	OpGe = OpLt + 3
	OpEq = OpLt + 4
	OpNe = OpLt + 5

	OpBitOr  = Op(PrecBitOr << 4)
	OpBitXor = Op(PrecBitXor << 4)
	OpBitAnd = Op(PrecBitAnd << 4)

	OpShl = Op(PrecShift << 4)
	OpShr = OpShl + 1

	OpAdd = Op(PrecAdd << 4)
	OpSub = OpAdd + 1

	OpMul      = Op(PrecMul << 4)
	OpMod      = OpMul + 1
	OpDiv      = OpMul + 2
	OpFloorDiv = OpMul + 3
	OpGcd      = OpMul + 4

	OpNeg    = Op(PrecUnary << 4)
	OpBitNeg = OpNeg + 1

	OpExp = Op(PrecExp << 4)

	OpParens = Op(PrecParens << 4)

	OpVariable = Op(PrecLeaf << 4)
	OpLiteral  = OpVariable + 1
)

// Symbol returns the text of op as it appears in expressions.
// Leaves have no symbol; the text of parentheses is the opening one.
func (op Op) Symbol() string {
	switch op {
	case OpOr:
		return "or"
	case OpSpaceOr:
		return " or"
	case OpOrSpace:
		return "or "
	case OpSpaceOrSpace:
		return " or "
	case OpAnd:
		return "and"
	case OpSpaceAnd:
		return " and"
	case OpAndSpace:
		return "and "
	case OpSpaceAndSpace:
		return " and "
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpBitOr:
		return "|"
	case OpBitXor:
		return "^"
	case OpBitAnd:
		return "&"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpMod:
		return "%"
	case OpDiv:
		return "/"
	case OpFloorDiv:
		return "//"
	case OpGcd:
		return "@"
	case OpBitNeg:
		return "~"
	case OpExp:
		return "**"
	case OpParens:
		return "("
	case OpVariable, OpLiteral:
		return ""
	default:
		panic("invalid operator")
	}
}

// Width is the number of characters op adds to an expression.
func (op Op) Width() int {
	if op == OpParens {
		return 2
	}
	return len(op.Symbol())
}

func (op Op) String() string {
	switch op {
	case OpVariable:
		return "variable"
	case OpLiteral:
		return "literal"
	case OpParens:
		return "()"
	default:
		return op.Symbol()
	}
}
