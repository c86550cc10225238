// Package lexer converts raw source text into an ordered sequence of
// spanned tokens. Lexical errors are accumulated, never fatal: the scanner
// always completes its single pass and produces every token the non-error
// portions of the input allow.
package lexer

import (
	"loxi/internal/diag"
	"loxi/internal/source"
	"loxi/internal/token"
)

// Scanner performs a single pass over the source with one byte of
// lookahead (two for comments, two-character operators, and decimal
// points).
type Scanner struct {
	cursor Cursor
	opts   Options
	diags  []diag.Diagnostic
}

// Options configures a Scanner.
type Options struct {
	// Reporter, when set, receives each diagnostic as it is produced in
	// addition to the scanner's own accumulator.
	Reporter diag.Reporter
}

// New creates a scanner for src.
func New(src string, opts Options) *Scanner {
	return &Scanner{cursor: NewCursor(src), opts: opts}
}

// Scan tokenizes the whole input. The result is terminated by exactly one
// EOF token whose span is empty and located at end of input.
func (s *Scanner) Scan() []source.WithSpan[token.Token] {
	var tokens []source.WithSpan[token.Token]
	for !s.cursor.EOF() {
		start := s.cursor.Mark()
		if tok, ok := s.next(start); ok {
			tokens = append(tokens, source.At(tok, s.cursor.SpanFrom(start)))
		}
	}
	eofMark := s.cursor.Mark()
	tokens = append(tokens, source.At(token.Token{Kind: token.EOF}, s.cursor.SpanFrom(eofMark)))
	return tokens
}

// next consumes one lexeme. ok=false means the lexeme produced no token:
// whitespace, a comment, or an error already reported.
func (s *Scanner) next(start Mark) (token.Token, bool) {
	switch b := s.cursor.Peek(); {
	case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		s.cursor.Bump()
		return token.Token{}, false

	case b == '/':
		s.cursor.Bump()
		if s.cursor.Eat('/') {
			// Line comment runs to (not including) the newline.
			for !s.cursor.EOF() && s.cursor.Peek() != '\n' {
				s.cursor.Bump()
			}
			return token.Token{}, false
		}
		return token.Token{Kind: token.Slash}, true

	case b == '"':
		return s.scanString(start)

	case isDigit(b):
		return s.scanNumber(start)

	case b == '!':
		s.cursor.Bump()
		return s.either('=', token.BangEqual, token.Bang), true
	case b == '=':
		s.cursor.Bump()
		return s.either('=', token.EqualEqual, token.Equal), true
	case b == '<':
		s.cursor.Bump()
		return s.either('=', token.LessEqual, token.Less), true
	case b == '>':
		s.cursor.Bump()
		return s.either('=', token.GreaterEqual, token.Greater), true

	default:
		if kind, ok := singleCharTokens[b]; ok {
			s.cursor.Bump()
			return token.Token{Kind: kind}, true
		}
		r, _ := s.cursor.PeekRune()
		if isIdentStart(r) {
			return s.scanIdentOrKeyword(start)
		}
		s.cursor.BumpRune()
		s.report("Unexpected character: "+string(r), s.cursor.SpanFrom(start))
		return token.Token{}, false
	}
}

// either consumes the next byte when it matches and picks the two-character
// kind, otherwise the one-character kind.
func (s *Scanner) either(next byte, matched, unmatched token.Kind) token.Token {
	if s.cursor.Eat(next) {
		return token.Token{Kind: matched}
	}
	return token.Token{Kind: unmatched}
}

var singleCharTokens = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	',': token.Comma,
	'.': token.Dot,
	'-': token.Minus,
	'+': token.Plus,
	';': token.Semicolon,
	'*': token.Star,
}

func (s *Scanner) report(msg string, span source.Span) {
	s.diags = append(s.diags, diag.Diagnostic{Message: msg, Span: span})
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(msg, span)
	}
}

// HasErrors reports whether scanning produced any diagnostics. Only valid
// after Scan.
func (s *Scanner) HasErrors() bool {
	return len(s.diags) > 0
}

// Diagnostics returns the accumulated diagnostics in source order.
// The returned slice is read-only.
func (s *Scanner) Diagnostics() []diag.Diagnostic {
	return s.diags
}
