package lexer

import "loxi/internal/token"

// scanNumber consumes one or more digits, optionally followed by '.' and
// at least one digit. The decimal point is only taken when a digit follows
// it (two bytes of lookahead), so "1." stops before the dot. The raw
// lexeme is kept unparsed; numeric conversion happens at evaluation.
func (s *Scanner) scanNumber(start Mark) (token.Token, bool) {
	for isDigit(s.cursor.Peek()) {
		s.cursor.Bump()
	}
	if b0, b1, ok := s.cursor.Peek2(); ok && b0 == '.' && isDigit(b1) {
		s.cursor.Bump() // '.'
		for isDigit(s.cursor.Peek()) {
			s.cursor.Bump()
		}
	}
	return token.Token{Kind: token.Number, Text: s.cursor.Text(s.cursor.SpanFrom(start))}, true
}
