// Package parser builds a single spanned expression tree from the token
// stream via recursive descent, one grammar rule per operator-precedence
// level. The first syntax error aborts the parse; no recovery or
// resynchronization is attempted.
package parser

import (
	"loxi/internal/ast"
	"loxi/internal/diag"
	"loxi/internal/source"
	"loxi/internal/token"
)

// Parser consumes a scanned token stream by index. The stream is always
// terminated by EOF, so peeking never runs past the slice; if it ever
// would, that is a bug in the scanner contract, not a user error.
type Parser struct {
	tokens []source.WithSpan[token.Token]
	pos    int
	opts   Options
	diags  []diag.Diagnostic
}

// Options configures a Parser.
type Options struct {
	// Reporter, when set, receives each diagnostic as it is produced in
	// addition to the parser's own accumulator.
	Reporter diag.Reporter
}

// New creates a parser over tokens.
func New(tokens []source.WithSpan[token.Token], opts Options) *Parser {
	return &Parser{tokens: tokens, opts: opts}
}

// Parse parses one expression. ok=false means the parse failed; the
// diagnostics carry the detail.
func (p *Parser) Parse() (*source.WithSpan[ast.Expr], bool) {
	return p.parseExpression()
}

func (p *Parser) peek() source.WithSpan[token.Token] {
	return p.tokens[p.pos]
}

func (p *Parser) advance() source.WithSpan[token.Token] {
	tok := p.tokens[p.pos]
	if tok.Value.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// check reports whether the current token is one of kinds.
func (p *Parser) check(kinds ...token.Kind) bool {
	cur := p.peek().Value.Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// eat consumes the current token when it has the given kind.
func (p *Parser) eat(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) report(msg string, span source.Span) {
	p.diags = append(p.diags, diag.Diagnostic{Message: msg, Span: span})
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(msg, span)
	}
}

// HasErrors reports whether parsing produced any diagnostics.
func (p *Parser) HasErrors() bool {
	return len(p.diags) > 0
}

// Diagnostics returns the accumulated diagnostics.
// The returned slice is read-only.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diags
}
