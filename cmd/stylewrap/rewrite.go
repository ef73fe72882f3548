package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylewrap"
)

var rewriteCmd = &cobra.Command{
	Use:     "rewrite",
	Aliases: []string{"rw"},
	Short:   "Rewrite annotated component functions with scoped styles",
	Long: `Find //stylewrap:styles directives, inline the referenced CSS, and wrap
each component's view in a style element plus an identified container.
Prints rewritten source to stdout unless --write is given.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRewrite,
}

func init() {
	f := rewriteCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for Go source files to process")
	f.BoolP("write", "w", false, "Rewrite files in place instead of printing to stdout")
	f.String("output-format", "", "Diagnostic format: issues|json")
}

func runRewrite(_ *cobra.Command, _ []string) error {
	config := buildRewriteConfig(false)

	result, err := stylewrap.Rewrite(config)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	// Diagnostics go to stderr in stdout mode so rewritten source stays
	// pipeable; in write mode stdout is free for them.
	diagOut := os.Stdout
	if !config.Write {
		diagOut = os.Stderr
	}

	if !quiet && len(result.Issues) > 0 {
		format := stylewrap.DetermineOutputFormat(getStringWithFallback("output-format", "rewrite.output-format", ""), quiet)
		if err := stylewrap.WriteOutput(diagOut, result, format, buildReportConfig()); err != nil {
			return err
		}
	}

	if !quiet && config.Write {
		fmt.Printf("Rewrote %d components in %d files\n", len(result.Components), result.FilesRewritten)
		fmt.Printf("  Files scanned: %d\n", result.FilesScanned)
	}

	if result.ErrorCount > 0 {
		os.Exit(1)
	}
	return nil
}
