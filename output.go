package stylewrap

import (
	"io"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, will be suppressed by the caller
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	case "issues":
		return OutputIssues
	default:
		// Following golangci-lint's UX: issues only by default
		return OutputIssues
	}
}

// WriteOutput writes the rewrite result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		return nil
	}
}
