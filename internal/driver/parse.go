package driver

import (
	"loxi/internal/ast"
	"loxi/internal/diag"
	"loxi/internal/parser"
	"loxi/internal/source"
)

// ParseResult is the outcome of the scanning and parsing phases. The two
// bags are independent collections: lexical diagnostics never abort the
// scan, while the first syntax diagnostic aborts the parse.
type ParseResult struct {
	Expr     *source.WithSpan[ast.Expr]
	Ok       bool
	ScanBag  *diag.Bag
	ParseBag *diag.Bag
	Offsets  *source.LineOffsets
}

// ParseSource scans then parses text into a single expression tree.
func ParseSource(text string) *ParseResult {
	tok := TokenizeSource(text)
	parseBag := diag.NewBag(0)
	p := parser.New(tok.Tokens, parser.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	expr, ok := p.Parse()
	return &ParseResult{
		Expr:     expr,
		Ok:       ok,
		ScanBag:  tok.Bag,
		ParseBag: parseBag,
		Offsets:  tok.Offsets,
	}
}

// Parse reads the file at path, scans, and parses it.
func Parse(path string) (*ParseResult, error) {
	text, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(text), nil
}
