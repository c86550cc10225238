package lexer

import "loxi/internal/token"

// scanIdentOrKeyword consumes an identifier: a letter or '_' start, then
// ASCII alphanumerics or '_'. The result is matched against the fixed
// keyword table; everything else is an Identifier.
func (s *Scanner) scanIdentOrKeyword(start Mark) (token.Token, bool) {
	s.cursor.BumpRune() // start rune, may be multi-byte
	for isIdentContinue(s.cursor.Peek()) {
		s.cursor.Bump()
	}
	name := s.cursor.Text(s.cursor.SpanFrom(start))
	if kind, ok := token.Lookup(name); ok {
		return token.Token{Kind: kind}, true
	}
	return token.Token{Kind: token.Identifier, Text: name}, true
}
