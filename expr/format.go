package expr

import (
	"strconv"
	"strings"
)

// Format returns the text of n. n need not be stored in a, but its children must.
func (a *Arena) Format(n Node) string {
	var b strings.Builder
	a.write(&b, n)
	return b.String()
}

// String returns the text of the node associated with r.
func (a *Arena) String(r Ref) string {
	return a.Format(a.Get(r))
}

func (a *Arena) write(b *strings.Builder, n Node) {
	switch {
	case n.Op == OpVariable:
		b.WriteString(a.names[n.Value])
	case n.Op == OpLiteral:
		b.WriteString(strconv.Itoa(int(n.Value)))
	case n.Op == OpParens:
		b.WriteByte('(')
		a.write(b, a.Get(n.Right))
		b.WriteByte(')')
	case n.Left == NoRef:
		b.WriteString(n.Op.Symbol())
		a.write(b, a.Get(n.Right))
	default:
		a.write(b, a.Get(n.Left))
		b.WriteString(n.Op.Symbol())
		a.write(b, a.Get(n.Right))
	}
}

// Length returns the number of characters in the text of n, without rendering it.
func (a *Arena) Length(n Node) int {
	switch {
	case n.Op == OpVariable:
		return len(a.names[n.Value])
	case n.Op == OpLiteral:
		return len(strconv.Itoa(int(n.Value)))
	case n.Left == NoRef:
		return n.Op.Width() + a.Length(a.Get(n.Right))
	default:
		return a.Length(a.Get(n.Left)) + n.Op.Width() + a.Length(a.Get(n.Right))
	}
}

// SafeBeforeKeyword is true iff a keyword can be written right after n without a space
// in between, i.e if the last token of n is a non-negative number or a closing parenthesis.
func (a *Arena) SafeBeforeKeyword(n Node) bool {
	for {
		switch n.Op {
		case OpParens:
			return true
		case OpLiteral:
			return n.Value >= 0
		case OpVariable:
			return false
		default:
			n = a.Get(n.Right)
		}
	}
}

// SafeAfterKeyword is true iff a keyword can be written right before n without a space
// in between, i.e if n starts with a unary operator or an opening parenthesis.
func (a *Arena) SafeAfterKeyword(n Node) bool {
	for {
		switch {
		case n.IsLeaf():
			return false
		case n.Left == NoRef:
			return true
		default:
			n = a.Get(n.Left)
		}
	}
}
