package source

import (
	"fmt"
	"unicode/utf8"
)

// BytePos is a byte offset into the source text. Positions advance by the
// UTF-8 encoded width of each consumed rune, not by rune count, so spans
// stay aligned in the presence of multi-byte characters.
type BytePos uint32

// Shift advances the position past one rune.
func (p BytePos) Shift(r rune) BytePos {
	return p + BytePos(utf8.RuneLen(r))
}

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start BytePos
	End   BytePos
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 {
	return uint32(s.End - s.Start)
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Union returns the smallest span covering both a and b. Composite nodes
// use it to span from their leftmost to their rightmost constituent.
func Union(a, b Span) Span {
	if b.Start < a.Start {
		a.Start = b.Start
	}
	if b.End > a.End {
		a.End = b.End
	}
	return a
}
