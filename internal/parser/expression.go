package parser

import (
	"loxi/internal/ast"
	"loxi/internal/source"
	"loxi/internal/token"
)

// Grammar, lowest to highest precedence:
//
//	expression → equality
//	equality   → comparison (("!=" | "==") comparison)*
//	comparison → term ((">" | ">=" | "<" | "<=") term)*
//	term       → factor (("+" | "-") factor)*
//	factor     → unary (("/" | "*") unary)*
//	unary      → ("-" | "!") unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil"
//	           | "(" expression ")"

func (p *Parser) parseExpression() (*source.WithSpan[ast.Expr], bool) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (*source.WithSpan[ast.Expr], bool) {
	return p.parseLeftAssoc(p.parseComparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) parseComparison() (*source.WithSpan[ast.Expr], bool) {
	return p.parseLeftAssoc(p.parseTerm,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) parseTerm() (*source.WithSpan[ast.Expr], bool) {
	return p.parseLeftAssoc(p.parseFactor, token.Plus, token.Minus)
}

func (p *Parser) parseFactor() (*source.WithSpan[ast.Expr], bool) {
	return p.parseLeftAssoc(p.parseUnary, token.Slash, token.Star)
}

// parseLeftAssoc builds one left-associative binary level: parse an
// operand, then fold `op operand` pairs into Binary nodes. The folded
// node's span is the union of the accumulated left span and the new right
// span.
func (p *Parser) parseLeftAssoc(operand func() (*source.WithSpan[ast.Expr], bool), ops ...token.Kind) (*source.WithSpan[ast.Expr], bool) {
	left, ok := operand()
	if !ok {
		return nil, false
	}
	for p.check(ops...) {
		op := p.advance()
		right, ok := operand()
		if !ok {
			return nil, false
		}
		span := source.Union(left.Span, right.Span)
		left = ast.Box(ast.Binary{Operator: op, Left: left, Right: right}, span)
	}
	return left, true
}

// parseUnary is right-recursive so prefixes stack: --x, !!x.
func (p *Parser) parseUnary() (*source.WithSpan[ast.Expr], bool) {
	if p.check(token.Minus, token.Bang) {
		op := p.advance()
		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		span := source.Union(op.Span, right.Span)
		return ast.Box(ast.Unary{Operator: op, Right: right}, span), true
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*source.WithSpan[ast.Expr], bool) {
	switch tok := p.peek(); tok.Value.Kind {
	case token.Number, token.String, token.True, token.False, token.Nil:
		lit := p.advance()
		return ast.Box(ast.Literal{Token: lit}, lit.Span), true

	case token.LeftParen:
		open := p.advance()
		inner, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		if !p.check(token.RightParen) {
			p.report("Unmatched parentheses.", inner.Span)
			return nil, false
		}
		closing := p.advance()
		span := source.Union(open.Span, closing.Span)
		return ast.Box(ast.Grouping{Inner: inner}, span), true

	default:
		p.report("Expected expression.", tok.Span)
		return nil, false
	}
}
