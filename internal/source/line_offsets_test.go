package source

import "testing"

func TestLineOffsets_Line(t *testing.T) {
	text := "line1\nline2\nline3\n"
	lo := NewLineOffsets(text)

	tests := []struct {
		name     string
		pos      BytePos
		expected int
	}{
		{name: "start of file", pos: 0, expected: 1},
		{name: "middle of first line", pos: 3, expected: 1},
		{name: "newline belongs to its line", pos: 5, expected: 1},
		{name: "start of second line", pos: 6, expected: 2},
		{name: "middle of second line", pos: 8, expected: 2},
		{name: "third line", pos: 13, expected: 3},
		{name: "position just past trailing newline", pos: 18, expected: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lo.Line(tt.pos); got != tt.expected {
				t.Errorf("Line(%d) = %d, want %d", tt.pos, got, tt.expected)
			}
		})
	}
}

func TestLineOffsets_SingleLine(t *testing.T) {
	lo := NewLineOffsets("no newline here")
	for pos := BytePos(0); pos <= 15; pos++ {
		if got := lo.Line(pos); got != 1 {
			t.Fatalf("Line(%d) = %d, want 1", pos, got)
		}
	}
}

func TestLineOffsets_EmptySource(t *testing.T) {
	lo := NewLineOffsets("")
	if got := lo.Line(0); got != 1 {
		t.Errorf("Line(0) = %d, want 1", got)
	}
}

func TestLineOffsets_OutOfRangePanics(t *testing.T) {
	lo := NewLineOffsets("ab")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for position past end of source")
		}
	}()
	lo.Line(3)
}
