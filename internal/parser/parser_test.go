package parser_test

import (
	"strings"
	"testing"

	"loxi/internal/ast"
	"loxi/internal/lexer"
	"loxi/internal/parser"
	"loxi/internal/source"
)

func parse(t *testing.T, input string) (*source.WithSpan[ast.Expr], *parser.Parser) {
	t.Helper()
	sc := lexer.New(input, lexer.Options{})
	tokens := sc.Scan()
	if sc.HasErrors() {
		t.Fatalf("scan errors in %q: %v", input, sc.Diagnostics())
	}
	p := parser.New(tokens, parser.Options{})
	expr, _ := p.Parse()
	return expr, p
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(+ 1.0 (* 2.0 3.0))"},
		{"1 * 2 + 3", "(+ (* 1.0 2.0) 3.0)"},
		{"1 + 2 + 3", "(+ (+ 1.0 2.0) 3.0)"},
		{"1 - 2 / 3", "(- 1.0 (/ 2.0 3.0))"},
		{"1 < 2 == 3 > 4", "(== (< 1.0 2.0) (> 3.0 4.0))"},
		{"1 <= 2 != 3 >= 4", "(!= (<= 1.0 2.0) (>= 3.0 4.0))"},
		{"-1 * 2", "(* (- 1.0) 2.0)"},
		{"--1", "(- (- 1.0))"},
		{"!!true", "(! (! true))"},
		{"(1 + 2) * 3", "(* (group (+ 1.0 2.0)) 3.0)"},
		{"nil", "nil"},
		{"false", "false"},
		{`"hi"`, "hi"},
		{"3.14", "3.14"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, p := parse(t, tt.input)
			if expr == nil {
				t.Fatalf("parse failed: %v", p.Diagnostics())
			}
			if got := ast.Print(expr.Value); got != tt.expected {
				t.Errorf("Print = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseSpans(t *testing.T) {
	expr, _ := parse(t, "1 + 23")
	if expr == nil {
		t.Fatal("parse failed")
	}
	// A binary node spans from the left operand's start to the right
	// operand's end.
	if expr.Span != (source.Span{Start: 0, End: 6}) {
		t.Errorf("root span = %v", expr.Span)
	}

	expr, _ = parse(t, " (1) ")
	if expr == nil {
		t.Fatal("parse failed")
	}
	if expr.Span != (source.Span{Start: 1, End: 4}) {
		t.Errorf("grouping span = %v", expr.Span)
	}
}

func TestParseUnmatchedParen(t *testing.T) {
	expr, p := parse(t, "(1 + 2")
	if expr != nil {
		t.Fatal("parse should fail")
	}
	diags := p.Diagnostics()
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "Unmatched parentheses.") {
		t.Fatalf("diagnostics = %v", diags)
	}
	// The diagnostic points at the sub-expression inside the parens.
	if diags[0].Span != (source.Span{Start: 1, End: 6}) {
		t.Errorf("span = %v", diags[0].Span)
	}
}

func TestParseExpectedExpression(t *testing.T) {
	tests := []string{"", "+", "1 +", "(", "()", "* 2"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expr, p := parse(t, input)
			if expr != nil {
				t.Fatal("parse should fail")
			}
			diags := p.Diagnostics()
			if len(diags) != 1 || !strings.Contains(diags[0].Message, "Expected expression.") {
				t.Fatalf("diagnostics = %v", diags)
			}
		})
	}
}

func TestParseFailureIsAllOrNothing(t *testing.T) {
	expr, p := parse(t, "1 + (2 *")
	if expr != nil {
		t.Fatal("parse should fail")
	}
	// The inner failure propagates immediately: exactly one diagnostic.
	if len(p.Diagnostics()) != 1 {
		t.Errorf("diagnostics = %v", p.Diagnostics())
	}
}

// TestPrintRoundTrip checks the renderings that are themselves valid
// source syntax: re-parsing and re-rendering them is a fixed point. The
// prefix operator form is deliberately not source syntax, so the property
// applies to literal leaves (modulo number normalization).
func TestPrintRoundTrip(t *testing.T) {
	// Strings render unquoted, so they are excluded: their rendering is
	// no longer a string literal.
	inputs := []string{"1.25", "42", "true", "false", "nil"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			expr, p := parse(t, input)
			if expr == nil {
				t.Fatalf("parse failed: %v", p.Diagnostics())
			}
			once := ast.Print(expr.Value)

			again, p2 := parse(t, once)
			if again == nil {
				t.Fatalf("re-parse of %q failed: %v", once, p2.Diagnostics())
			}
			if twice := ast.Print(again.Value); twice != once {
				t.Errorf("round trip changed rendering: %q -> %q", once, twice)
			}
		})
	}
}

// Rendering is a pure function of the tree: the same input always renders
// identically.
func TestPrintDeterministic(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3",
		"-(1 / 2) >= 3 != true",
		`!("a" == "b")`,
		"(((nil)))",
	}
	for _, input := range inputs {
		a, _ := parse(t, input)
		b, _ := parse(t, input)
		if a == nil || b == nil {
			t.Fatalf("parse failed for %q", input)
		}
		if ast.Print(a.Value) != ast.Print(b.Value) {
			t.Errorf("non-deterministic rendering for %q", input)
		}
	}
}
