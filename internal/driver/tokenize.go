// Package driver wires the pipeline phases together: source text in,
// tokens, tree, or value out. Data flows strictly forward and each phase
// owns its own diagnostics.
package driver

import (
	"loxi/internal/diag"
	"loxi/internal/lexer"
	"loxi/internal/source"
	"loxi/internal/token"
)

// TokenizeResult is the outcome of the scanning phase.
type TokenizeResult struct {
	Tokens  []source.WithSpan[token.Token]
	Bag     *diag.Bag
	Offsets *source.LineOffsets
}

// TokenizeSource scans text into the full token stream. Lexical errors
// are accumulated in the bag; scanning never aborts early.
func TokenizeSource(text string) *TokenizeResult {
	bag := diag.NewBag(0)
	sc := lexer.New(text, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := sc.Scan()
	return &TokenizeResult{
		Tokens:  tokens,
		Bag:     bag,
		Offsets: source.NewLineOffsets(text),
	}
}

// Tokenize reads the file at path and scans it.
func Tokenize(path string) (*TokenizeResult, error) {
	text, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return TokenizeSource(text), nil
}
