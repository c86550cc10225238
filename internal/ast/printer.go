package ast

import (
	"strings"

	"loxi/internal/token"
)

// Print renders the tree in the fully-parenthesized prefix form:
// `(operator left right)` for binary nodes, `(op right)` for unary nodes,
// `(group inner)` for groupings, and the literal's own textual form for
// leaves. The rendering is deterministic: equal trees render identically.
func Print(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Literal:
		tok := n.Token.Value
		switch tok.Kind {
		case token.Number, token.String:
			b.WriteString(tok.Literal())
		default:
			b.WriteString(tok.Lexeme())
		}
	case Unary:
		b.WriteByte('(')
		b.WriteString(n.Operator.Value.Lexeme())
		b.WriteByte(' ')
		printExpr(b, n.Right.Value)
		b.WriteByte(')')
	case Binary:
		b.WriteByte('(')
		b.WriteString(n.Operator.Value.Lexeme())
		b.WriteByte(' ')
		printExpr(b, n.Left.Value)
		b.WriteByte(' ')
		printExpr(b, n.Right.Value)
		b.WriteByte(')')
	case Grouping:
		b.WriteString("(group ")
		printExpr(b, n.Inner.Value)
		b.WriteByte(')')
	}
}
