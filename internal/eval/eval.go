package eval

import (
	"fmt"
	"strconv"

	"loxi/internal/ast"
	"loxi/internal/diag"
	"loxi/internal/source"
	"loxi/internal/token"
)

// RuntimeError is the single semantic diagnostic of an evaluation.
// Evaluation halts at the first one; multiple runtime errors are never
// collected from one walk.
type RuntimeError struct {
	Message string
	Span    source.Span
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Diagnostic converts the error into the shared diagnostic shape.
func (e *RuntimeError) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{Message: e.Message, Span: e.Span}
}

func errAt(span source.Span, msg string) (Value, error) {
	return nil, &RuntimeError{Message: msg, Span: span}
}

// Evaluate walks the tree top-down and returns its value, or the first
// semantic error. The walk is a pure function of the tree: no shared or
// mutable state survives between invocations.
func Evaluate(expr *source.WithSpan[ast.Expr]) (Value, error) {
	return evalExpr(expr)
}

func evalExpr(e *source.WithSpan[ast.Expr]) (Value, error) {
	switch n := e.Value.(type) {
	case ast.Literal:
		return literal(n.Token)
	case ast.Grouping:
		return evalExpr(n.Inner)
	case ast.Unary:
		return unary(n)
	case ast.Binary:
		return binary(n)
	default:
		// Unreachable given the parser's grammar.
		return errAt(e.Span, "Invalid operator")
	}
}

func literal(tok source.WithSpan[token.Token]) (Value, error) {
	switch tok.Value.Kind {
	case token.Number:
		f, err := strconv.ParseFloat(tok.Value.Text, 64)
		if err != nil {
			// The scanner guarantees well-formed digit sequences; a parse
			// failure here means the scanner contract was broken.
			return errAt(tok.Span, fmt.Sprintf("internal error: malformed number literal %q", tok.Value.Text))
		}
		return Number(f), nil
	case token.String:
		return String(tok.Value.Text), nil
	case token.True:
		return Boolean(true), nil
	case token.False:
		return Boolean(false), nil
	default:
		return Nil{}, nil
	}
}

func unary(n ast.Unary) (Value, error) {
	right, err := evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Value.Kind {
	case token.Minus:
		num, ok := right.(Number)
		if !ok {
			return errAt(n.Operator.Span, "Operand must be a number.")
		}
		return -num, nil
	case token.Bang:
		return Boolean(!right.Truthy()), nil
	default:
		return errAt(n.Operator.Span, "Invalid operator")
	}
}

func binary(n ast.Binary) (Value, error) {
	// Both operands are always evaluated, left first; there is no
	// short-circuiting.
	left, err := evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	span := source.Union(n.Left.Span, n.Right.Span)

	switch n.Operator.Value.Kind {
	case token.Plus:
		switch l := left.(type) {
		case Number:
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		case String:
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		return errAt(span, "Operands must be two numbers or two strings.")

	case token.Minus:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		return l - r, nil

	case token.Star:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		return l * r, nil

	case token.Slash:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		if r == 0.0 {
			return errAt(span, "Divide by zero.")
		}
		return l / r, nil

	case token.Less:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		return Boolean(l < r), nil

	case token.LessEqual:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		return Boolean(l <= r), nil

	case token.Greater:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		return Boolean(l > r), nil

	case token.GreaterEqual:
		l, r, ok := numbers(left, right)
		if !ok {
			return errAt(span, "Operands must be numbers.")
		}
		return Boolean(l >= r), nil

	case token.EqualEqual:
		return Boolean(Equal(left, right)), nil
	case token.BangEqual:
		return Boolean(!Equal(left, right)), nil

	default:
		// Cannot occur given the parser's grammar.
		return errAt(n.Operator.Span, "Invalid operator")
	}
}

func numbers(left, right Value) (l, r Number, ok bool) {
	l, lok := left.(Number)
	r, rok := right.(Number)
	return l, r, lok && rok
}
