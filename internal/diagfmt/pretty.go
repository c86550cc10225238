// Package diagfmt renders diagnostics, token streams, and values for the
// command surface. The core phases know nothing about presentation.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"loxi/internal/diag"
	"loxi/internal/source"
)

// Options controls diagnostic rendering.
type Options struct {
	// Color enables ANSI colors for the error prefix.
	Color bool
}

var errorPrefix = color.New(color.FgRed, color.Bold)

// Diagnostics writes one line per diagnostic:
//
//	[line N] Error: {message}
//
// where N is the 1-based line of the diagnostic's span end.
func Diagnostics(w io.Writer, diags []diag.Diagnostic, offsets *source.LineOffsets, opts Options) {
	for _, d := range diags {
		line := offsets.Line(d.Span.End)
		prefix := "Error:"
		if opts.Color {
			prefix = errorPrefix.Sprint("Error:")
		}
		fmt.Fprintf(w, "[line %d] %s %s\n", line, prefix, d.Message)
	}
}
