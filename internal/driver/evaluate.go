package driver

import (
	"errors"

	"loxi/internal/eval"
	"loxi/internal/source"
)

// EvaluateResult is the outcome of the full pipeline. Runtime is non-nil
// when evaluation halted on its first semantic error; Value is set
// otherwise (and only when the parse succeeded).
type EvaluateResult struct {
	*ParseResult
	Value   eval.Value
	Runtime *eval.RuntimeError
}

// EvaluateSource runs scan, parse, and evaluate over text.
func EvaluateSource(text string) *EvaluateResult {
	parsed := ParseSource(text)
	result := &EvaluateResult{ParseResult: parsed}
	if !parsed.Ok {
		return result
	}
	value, err := eval.Evaluate(parsed.Expr)
	if err != nil {
		var rtErr *eval.RuntimeError
		if !errors.As(err, &rtErr) {
			rtErr = &eval.RuntimeError{Message: err.Error(), Span: parsed.Expr.Span}
		}
		result.Runtime = rtErr
		return result
	}
	result.Value = value
	return result
}

// Evaluate reads the file at path and runs the full pipeline.
func Evaluate(path string) (*EvaluateResult, error) {
	text, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return EvaluateSource(text), nil
}
