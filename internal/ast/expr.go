// Package ast defines the expression tree produced by the parser. The
// tree is strictly hierarchical: every node exclusively owns its children
// and no sharing or cycles are possible by construction.
package ast

import (
	"loxi/internal/source"
	"loxi/internal/token"
)

// Expr is a node of the expression tree. Nodes and their constituent
// tokens are wrapped in source.WithSpan so any node can report its own
// source range.
type Expr interface {
	isExpr()
}

// Literal is a number, string, boolean, or nil leaf. The token keeps its
// raw payload.
type Literal struct {
	Token source.WithSpan[token.Token]
}

// Unary is a prefix operator applied to one operand.
type Unary struct {
	Operator source.WithSpan[token.Token]
	Right    *source.WithSpan[Expr]
}

// Binary is an infix operator applied to two operands, evaluated left to
// right.
type Binary struct {
	Operator source.WithSpan[token.Token]
	Left     *source.WithSpan[Expr]
	Right    *source.WithSpan[Expr]
}

// Grouping is a parenthesized sub-expression with no semantics of its own.
type Grouping struct {
	Inner *source.WithSpan[Expr]
}

func (Literal) isExpr()  {}
func (Unary) isExpr()    {}
func (Binary) isExpr()   {}
func (Grouping) isExpr() {}

// Box wraps an expression with its span on the heap, for use as a child
// of another node.
func Box(e Expr, span source.Span) *source.WithSpan[Expr] {
	node := source.At[Expr](e, span)
	return &node
}
