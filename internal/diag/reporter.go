package diag

import "loxi/internal/source"

// Reporter is the minimal contract for receiving diagnostics from a phase.
// Phases depend on this interface rather than on Bag so callers can route
// diagnostics wherever they need.
type Reporter interface {
	Report(message string, span source.Span)
}

// BagReporter forwards reported diagnostics into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(message string, span source.Span) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Message: message, Span: span})
}
