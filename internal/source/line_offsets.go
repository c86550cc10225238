package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// LineOffsets maps byte positions back to 1-based source lines. It stores
// the byte offset of every line start: offset 0, plus one entry after each
// newline. Offsets are strictly increasing by construction.
type LineOffsets struct {
	offsets []uint32
	len     uint32
}

// NewLineOffsets scans text once and records every line-start offset.
func NewLineOffsets(text string) *LineOffsets {
	length, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	offsets := make([]uint32, 1, 16)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, uint32(i+1))
		}
	}
	return &LineOffsets{offsets: offsets, len: length}
}

// Line returns the 1-based line containing pos. The insertion point of pos
// in the sorted offset list is exactly the line number, since line 1's
// start is always present.
//
// pos must not exceed the source byte length; callers may only query
// positions derived from spans of the same source text. Violating that is
// a programming error, not a recoverable diagnostic.
func (lo *LineOffsets) Line(pos BytePos) int {
	if uint32(pos) > lo.len {
		panic(fmt.Sprintf("source: position %d outside source of %d bytes", pos, lo.len))
	}
	return sort.Search(len(lo.offsets), func(i int) bool {
		return lo.offsets[i] > uint32(pos)
	})
}
