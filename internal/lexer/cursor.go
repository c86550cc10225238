package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"loxi/internal/source"
)

// Cursor is a position in the source text with cheap byte-level lookahead.
type Cursor struct {
	src   string
	off   source.BytePos
	limit source.BytePos
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{src: src, limit: source.BytePos(limit)}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Pos returns the current byte position.
func (c *Cursor) Pos() source.BytePos {
	return c.off
}

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Peek2 returns the current and next byte, with ok=false if fewer than two
// bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= c.limit {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// Bump consumes and returns the current byte, or 0 at end of input.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Eat consumes the current byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

// PeekRune decodes the rune at the cursor without consuming it.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.src[c.off]
	if b < utf8.RuneSelf { // fast path for ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.src[c.off:])
}

// BumpRune consumes one rune, advancing by its decoded width. Invalid
// UTF-8 yields utf8.RuneError and advances a single byte.
func (c *Cursor) BumpRune() rune {
	r, size := c.PeekRune()
	c.off += source.BytePos(size)
	return r
}

// Mark remembers a position so a span can be taken later.
type Mark source.BytePos

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom returns the span from a saved mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: source.BytePos(m), End: c.off}
}

// Text returns the source text covered by span.
func (c *Cursor) Text(span source.Span) string {
	return c.src[span.Start:span.End]
}
