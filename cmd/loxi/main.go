package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loxi/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loxi",
	Short: "Loxi expression language toolchain",
	Long:  `Loxi scans, parses, and evaluates expression source files`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
