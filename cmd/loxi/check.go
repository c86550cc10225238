package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loxi/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] dir",
	Short: "Check every .lox file under a directory",
	Long:  `Check runs the full pipeline over every .lox file in parallel and reports diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = one per CPU)")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := manifestConfig()

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !cmd.Flags().Changed("jobs") && cfg.Check.Jobs > 0 {
		jobs = cfg.Check.Jobs
	}

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	if !cmd.Flags().Changed("cache") {
		useCache = cfg.Check.Cache
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("loxi")
		if err != nil {
			// The cache is an optimization; checking proceeds without it.
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
		}
	}

	results, err := driver.CheckDir(cmd.Context(), args[0], jobs, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	worst := driver.ExitOK
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read file %s\n", res.Path)
		}
		for _, issue := range res.Issues {
			fmt.Fprintf(os.Stderr, "%s: [line %d] Error: %s\n", res.Path, issue.Line, issue.Message)
		}
		if res.ExitCode == driver.ExitOK {
			suffix := ""
			if res.Cached {
				suffix = " (cached)"
			}
			fmt.Printf("%s: ok%s\n", res.Path, suffix)
		}
		if res.ExitCode > worst {
			worst = res.ExitCode
		}
	}

	if worst != driver.ExitOK {
		os.Exit(worst)
	}
	return nil
}
