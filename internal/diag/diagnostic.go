// Package diag holds the diagnostic types shared by every phase of the
// pipeline. A diagnostic is a human-readable message plus the exact source
// range responsible for it. There are no severity levels: every diagnostic
// is a user-visible error that blocks successful completion of its phase.
package diag

import "loxi/internal/source"

// Diagnostic is one user-facing error.
type Diagnostic struct {
	Message string
	Span    source.Span
}

// New builds a diagnostic covering [start, end).
func New(message string, start, end source.BytePos) Diagnostic {
	return Diagnostic{Message: message, Span: source.Span{Start: start, End: end}}
}
