package diagfmt_test

import (
	"strings"
	"testing"

	"loxi/internal/diag"
	"loxi/internal/diagfmt"
	"loxi/internal/lexer"
	"loxi/internal/source"
)

func TestDiagnostics(t *testing.T) {
	text := "1 + 2\n\"abc"
	offsets := source.NewLineOffsets(text)
	diags := []diag.Diagnostic{
		{Message: "Unterminated String", Span: source.Span{Start: 6, End: 10}},
	}

	var out strings.Builder
	diagfmt.Diagnostics(&out, diags, offsets, diagfmt.Options{})

	expected := "[line 2] Error: Unterminated String\n"
	if out.String() != expected {
		t.Errorf("got %q, want %q", out.String(), expected)
	}
}

func TestDiagnosticsLineFromSpanEnd(t *testing.T) {
	// The reported line comes from the span's end position.
	text := "\"ab\ncd"
	offsets := source.NewLineOffsets(text)
	diags := []diag.Diagnostic{
		{Message: "Unterminated String", Span: source.Span{Start: 0, End: 6}},
	}

	var out strings.Builder
	diagfmt.Diagnostics(&out, diags, offsets, diagfmt.Options{})
	if !strings.HasPrefix(out.String(), "[line 2]") {
		t.Errorf("got %q, want line 2", out.String())
	}
}

func TestTokens(t *testing.T) {
	sc := lexer.New(`(1 + "x")`, lexer.Options{})
	tokens := sc.Scan()

	var out strings.Builder
	if err := diagfmt.Tokens(&out, tokens); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"LEFT_PAREN ( null",
		"NUMBER 1 1.0",
		"PLUS + null",
		`STRING "x" x`,
		"RIGHT_PAREN ) null",
		"EOF  null",
		"",
	}, "\n")
	if out.String() != expected {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), expected)
	}
}

func TestTokensJSON(t *testing.T) {
	sc := lexer.New("1", lexer.Options{})
	tokens := sc.Scan()

	var out strings.Builder
	if err := diagfmt.TokensJSON(&out, tokens); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"type": "NUMBER"`, `"literal": "1.0"`, `"type": "EOF"`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %s:\n%s", want, out.String())
		}
	}
}
