package token

import (
	"math"
	"strconv"
	"strings"
)

// Token is a single lexical token. Identifier, String, and Number carry
// their payload in Text; Number keeps the raw lexeme unparsed so that
// numeric conversion is deferred to evaluation. Tokens are immutable once
// produced and compare structurally.
type Token struct {
	Kind Kind
	Text string
}

// Type returns the UPPER_SNAKE type name of the display encoding.
func (t Token) Type() string {
	return t.Kind.String()
}

// Lexeme returns the source text form of the token. String literals are
// re-quoted; EOF has no lexeme.
func (t Token) Lexeme() string {
	if lex, ok := fixedLexemes[t.Kind]; ok {
		return lex
	}
	switch t.Kind {
	case Identifier, Number:
		return t.Text
	case String:
		return "\"" + t.Text + "\""
	default:
		return ""
	}
}

// Literal returns the literal payload of the display encoding: the string
// content, the number lexeme parsed and re-rendered with a mandatory
// fractional part, or "null" for every other token.
func (t Token) Literal() string {
	switch t.Kind {
	case String:
		return t.Text
	case Number:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			// The scanner only emits well-formed digit sequences.
			return t.Text
		}
		return FormatNumberLiteral(f)
	default:
		return "null"
	}
}

// String renders the token in the fixed `TYPE lexeme literal` encoding,
// one token per line in the stream output.
func (t Token) String() string {
	return t.Type() + " " + t.Lexeme() + " " + t.Literal()
}

// FormatNumberLiteral renders f in the literal encoding: the shortest
// decimal form that round-trips, with ".0" appended for integral values.
// Non-finite values fall back to Go's default float formatting.
func FormatNumberLiteral(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
