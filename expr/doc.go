// Package expr describes the expressions built by the search engine.
//
// An expression is a tree of operators whose leaves are integer literals or input variables.
// Each operator has a precedence class; precedence tells whether a subexpression can be used
// as an operand without parentheses. For instance, with a = "x+1" and b = "y",
// "a*b" cannot be written "x+1*y" because the class of "+" is below the class of "*":
// Binaries[i].Admits(OpAdd, OpVariable) is false for the multiplication.
//
// Expressions are shared: a given subexpression is referenced by many larger ones.
// They are thus stored in an Arena, and refer to their children through a Ref.
// Nodes are never modified nor freed once added to the arena.
//
// The text of an expression is what is being minimized. Its length counts every character:
// digits of literals, variable names, operator symbols (including the spaces of keyword
// operators) and parentheses.
//
//	a := expr.NewArena([]string{"x"})
//	x := a.Add(expr.Variable(0))
//	one := a.Add(expr.Literal(1))
//	sum := a.Add(expr.Bin(expr.OpAdd, x, one, 1))
//	p := expr.Parens(sum, 1)
//	a.Format(p) // "(x+1)"
//	a.Length(p) // 5
package expr
