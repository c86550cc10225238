package diag

// Bag is an append-only accumulator of diagnostics. Each phase owns its
// bag exclusively; items are never mutated after being added.
type Bag struct {
	items []Diagnostic
	max   int
}

// DefaultMax bounds a bag against pathological inputs. One diagnostic per
// offending character is the worst the scanner can produce.
const DefaultMax = 1 << 16

// NewBag returns an empty bag capped at max diagnostics. A max of zero or
// below means DefaultMax.
func NewBag(max int) *Bag {
	if max <= 0 {
		max = DefaultMax
	}
	return &Bag{max: max}
}

// Add appends d. It returns false once the cap is reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	return len(b.items) > 0
}

// Items returns a read-only view of the recorded diagnostics.
// Do not modify the returned slice; it aliases the bag's storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}
