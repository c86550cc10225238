package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loxi/internal/diagfmt"
	"loxi/internal/project"
	"loxi/internal/source"
)

// readSource loads a source file. Failure to read is reported to the user
// and treated as empty input for the downstream phases.
func readSource(path string) string {
	text, err := source.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file %s\n", path)
		return ""
	}
	return text
}

// manifestConfig loads loxi.toml defaults from the current directory
// upward. A missing or broken manifest contributes nothing.
func manifestConfig() project.Config {
	m, ok, err := project.Load(".")
	if err != nil || !ok {
		return project.Config{}
	}
	return m.Config
}

// renderOptions resolves the --color flag (the manifest supplies the
// default when the flag is untouched) against whether f is a terminal.
func renderOptions(cmd *cobra.Command, f *os.File) diagfmt.Options {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if !cmd.Root().PersistentFlags().Changed("color") {
		if cfg := manifestConfig(); cfg.Output.Color != "" {
			mode = cfg.Output.Color
		}
	}
	return diagfmt.Options{
		Color: mode == "on" || (mode == "auto" && isTerminal(f)),
	}
}
