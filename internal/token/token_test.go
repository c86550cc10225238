package token

import "testing"

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		expected string
	}{
		{name: "punctuation", tok: Token{Kind: LeftParen}, expected: "LEFT_PAREN ( null"},
		{name: "two char operator", tok: Token{Kind: BangEqual}, expected: "BANG_EQUAL != null"},
		{name: "keyword", tok: Token{Kind: While}, expected: "WHILE while null"},
		{name: "identifier", tok: Token{Kind: Identifier, Text: "foo"}, expected: "IDENTIFIER foo null"},
		{name: "string requotes lexeme", tok: Token{Kind: String, Text: "hi"}, expected: "STRING \"hi\" hi"},
		{name: "integral number gains fraction", tok: Token{Kind: Number, Text: "42"}, expected: "NUMBER 42 42.0"},
		{name: "fractional number", tok: Token{Kind: Number, Text: "3.14"}, expected: "NUMBER 3.14 3.14"},
		{name: "number keeps raw lexeme", tok: Token{Kind: Number, Text: "42.00"}, expected: "NUMBER 42.00 42.0"},
		{name: "eof", tok: Token{Kind: EOF}, expected: "EOF  null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if k, ok := Lookup("while"); !ok || k != While {
		t.Errorf("Lookup(while) = %v, %v", k, ok)
	}
	if _, ok := Lookup("whale"); ok {
		t.Error("Lookup(whale) should not match a keyword")
	}
}

func TestFormatNumberLiteral(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{1, "1.0"},
		{0.5, "0.5"},
		{3.14, "3.14"},
		{4294967296, "4294967296.0"},
		{0, "0.0"},
	}
	for _, tt := range tests {
		if got := FormatNumberLiteral(tt.in); got != tt.expected {
			t.Errorf("FormatNumberLiteral(%v) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
