// Package eval walks the expression tree and produces a single runtime
// value, or the first semantic error encountered.
package eval

import (
	"math"
	"strconv"
)

// Value is the result of evaluating an expression. Values are transient:
// they are produced during one evaluation and never persisted.
type Value interface {
	// Truthy maps the value to a boolean for logical negation: nil and
	// false are falsy, everything else is truthy regardless of payload.
	Truthy() bool
	// String is the value's display form.
	String() string

	isValue()
}

type (
	// Nil is the absence of a value.
	Nil struct{}
	// Boolean is a true/false value.
	Boolean bool
	// Number is a double-precision float.
	Number float64
	// String is owned text.
	String string
)

func (Nil) isValue()     {}
func (Boolean) isValue() {}
func (Number) isValue()  {}
func (String) isValue()  {}

func (Nil) Truthy() bool       { return false }
func (b Boolean) Truthy() bool { return bool(b) }
func (Number) Truthy() bool    { return true }
func (String) Truthy() bool    { return true }

func (Nil) String() string       { return "nil" }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (s String) String() string  { return string(s) }

// String renders the number in its default decimal form: the shortest
// representation that round-trips, without a forced fractional part.
// Non-finite values use Go's default float formatting; this repository
// does not special-case NaN or negative zero.
func (n Number) String() string {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal is structural equality across value variants: same variant with
// equal payload. Any cross-variant comparison is false, never an error.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	}
	return false
}
