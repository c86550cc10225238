package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loxi/internal/diag"
	"loxi/internal/diagfmt"
	"loxi/internal/driver"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [flags] file.lox",
	Short: "Evaluate a source file",
	Long:  `Evaluate runs the full pipeline and prints the resulting value`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	text := readSource(args[0])
	if text == "" {
		return nil
	}
	res := driver.EvaluateSource(text)
	opts := renderOptions(cmd, os.Stderr)

	exitCode := driver.ExitOK
	if res.ScanBag.HasErrors() {
		diagfmt.Diagnostics(os.Stderr, res.ScanBag.Items(), res.Offsets, opts)
		exitCode = driver.ExitLexError
	}

	switch {
	case !res.Ok:
		diagfmt.Diagnostics(os.Stderr, res.ParseBag.Items(), res.Offsets, opts)
		exitCode = driver.ExitLexError
	case res.Runtime != nil:
		diagfmt.Diagnostics(os.Stderr, []diag.Diagnostic{res.Runtime.Diagnostic()}, res.Offsets, opts)
		exitCode = driver.ExitRuntimeError
	default:
		fmt.Println(res.Value)
	}

	if exitCode != driver.ExitOK {
		os.Exit(exitCode)
	}
	return nil
}
