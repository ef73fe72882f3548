package stylewrap

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Summary    JSONSummary     `json:"summary"`
	Components []JSONComponent `json:"components"`
	Issues     []JSONIssue     `json:"issues"`
}

// JSONSummary contains high-level rewrite counts
type JSONSummary struct {
	FilesScanned        int `json:"files_scanned"`
	FilesSkipped        int `json:"files_skipped"`
	FilesRewritten      int `json:"files_rewritten"`
	ComponentsRewritten int `json:"components_rewritten"`
	Errors              int `json:"errors"`
}

// JSONComponent represents one rewritten component function
type JSONComponent struct {
	File      string `json:"file"`
	Function  string `json:"function"`
	Ident     string `json:"ident"`
	StylePath string `json:"style_path"`
}

// JSONIssue represents a single rewrite failure
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the rewrite result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	components := make([]JSONComponent, len(result.Components))
	for i, c := range result.Components {
		components[i] = JSONComponent{
			File:      c.File,
			Function:  c.FuncName,
			Ident:     c.Ident,
			StylePath: c.StylePath,
		}
	}

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned:        result.FilesScanned,
			FilesSkipped:        result.FilesSkipped,
			FilesRewritten:      result.FilesRewritten,
			ComponentsRewritten: len(result.Components),
			Errors:              result.ErrorCount,
		},
		Components: components,
		Issues:     issues,
	}
}
