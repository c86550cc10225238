package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loxi/internal/ast"
	"loxi/internal/diagfmt"
	"loxi/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lox",
	Short: "Parse a source file into an expression tree",
	Long:  `Parse renders the expression tree in fully-parenthesized prefix form`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	text := readSource(args[0])
	if text == "" {
		return nil
	}
	res := driver.ParseSource(text)
	opts := renderOptions(cmd, os.Stderr)

	exitCode := driver.ExitOK
	if res.ScanBag.HasErrors() {
		diagfmt.Diagnostics(os.Stderr, res.ScanBag.Items(), res.Offsets, opts)
		exitCode = driver.ExitLexError
	}

	if res.Ok {
		fmt.Println(ast.Print(res.Expr.Value))
	} else {
		diagfmt.Diagnostics(os.Stderr, res.ParseBag.Items(), res.Offsets, opts)
		exitCode = driver.ExitLexError
	}

	if exitCode != driver.ExitOK {
		os.Exit(exitCode)
	}
	return nil
}
