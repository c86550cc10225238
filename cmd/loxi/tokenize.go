package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loxi/internal/diagfmt"
	"loxi/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lox",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text := readSource(args[0])
	res := driver.TokenizeSource(text)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = manifestConfig().Output.Format
	}

	switch format {
	case "", "pretty":
		if err := diagfmt.Tokens(os.Stdout, res.Tokens); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.TokensJSON(os.Stdout, res.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if res.Bag.HasErrors() {
		diagfmt.Diagnostics(os.Stderr, res.Bag.Items(), res.Offsets, renderOptions(cmd, os.Stderr))
		os.Exit(driver.ExitLexError)
	}
	return nil
}
