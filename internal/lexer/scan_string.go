package lexer

import "loxi/internal/token"

// scanString consumes a string literal. The payload excludes the quotes.
// Reaching end of input before the closing quote reports "Unterminated
// String" spanning from the opening quote to end of input and produces no
// token.
func (s *Scanner) scanString(start Mark) (token.Token, bool) {
	s.cursor.Bump() // opening '"'
	for !s.cursor.EOF() {
		if s.cursor.Eat('"') {
			span := s.cursor.SpanFrom(start)
			inner := s.cursor.Text(span)
			return token.Token{Kind: token.String, Text: inner[1 : len(inner)-1]}, true
		}
		s.cursor.BumpRune()
	}
	s.report("Unterminated String", s.cursor.SpanFrom(start))
	return token.Token{}, false
}
