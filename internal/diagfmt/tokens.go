package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"loxi/internal/source"
	"loxi/internal/token"
)

// Tokens writes the token stream one per line in the fixed
// `TYPE lexeme literal` encoding, with "null" as the literal placeholder
// for non-literal tokens.
func Tokens(w io.Writer, tokens []source.WithSpan[token.Token]) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.Value); err != nil {
			return err
		}
	}
	return nil
}

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal string `json:"literal"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
}

// TokensJSON writes the token stream as an indented JSON array.
func TokensJSON(w io.Writer, tokens []source.WithSpan[token.Token]) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Type:    tok.Value.Type(),
			Lexeme:  tok.Value.Lexeme(),
			Literal: tok.Value.Literal(),
			Start:   uint32(tok.Span.Start),
			End:     uint32(tok.Span.End),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
