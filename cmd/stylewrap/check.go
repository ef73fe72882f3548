package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylewrap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the rewrite pipeline without emitting anything",
	Long: `Validate every //stylewrap:styles directive: arguments parse, style files
resolve and read, and synthesized bodies are valid Go. Nothing is written.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		config := buildRewriteConfig(true)

		result, err := stylewrap.Rewrite(config)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		quiet := getBoolWithFallback("quiet", "quiet", false)
		outputFormat := getStringWithFallback("output-format", "check.output-format", "")
		format := stylewrap.DetermineOutputFormat(outputFormat, quiet)

		if !quiet {
			if err := stylewrap.WriteOutput(os.Stdout, result, format, buildReportConfig()); err != nil {
				return err
			}
		}

		// Exit code logic - "Soft Gate" approach
		strict := getBoolWithFallback("strict", "check.strict", false)
		if strict {
			// Strict mode: any issue fails the build
			if len(result.Issues) > 0 {
				os.Exit(1)
			}
		} else if result.ErrorCount > 0 {
			// Default mode: only errors fail the build
			os.Exit(1)
		}

		return nil
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for Go source files to process")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (stylewrap) suffix on issues")
}
