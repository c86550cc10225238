package source

// WithSpan pairs a value with the source range it originated from. Tokens
// and syntax-tree nodes are annotated with the same wrapper so any of them
// can report its own range.
type WithSpan[T any] struct {
	Value T
	Span  Span
}

// At wraps value with the given span.
func At[T any](value T, span Span) WithSpan[T] {
	return WithSpan[T]{Value: value, Span: span}
}

// Empty wraps value with the zero span.
func Empty[T any](value T) WithSpan[T] {
	return WithSpan[T]{Value: value}
}
