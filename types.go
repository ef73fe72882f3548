package stylewrap

// Config holds rewriter configuration.
type Config struct {
	Paths       []string // Glob patterns for Go source files to process
	ProjectRoot string   // Directory style paths resolve against; "" = nearest go.mod
	Write       bool     // Rewrite files in place
	Check       bool     // Run the full pipeline without emitting anything
	Verbose     bool     // Enable progress logging
}

// ReportConfig controls how issues are printed.
type ReportConfig struct {
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (stylewrap) suffix on issues
	UseColors        bool // Force color output
}

// Component records one successfully rewritten component function.
type Component struct {
	File      string
	FuncName  string
	Ident     string
	StylePath string
}

// Result contains rewrite stats and any per-component failures.
type Result struct {
	FilesScanned   int
	FilesSkipped   int
	FilesRewritten int
	Components     []Component
	Issues         []Issue
	ErrorCount     int
}

// OutputFormat represents the diagnostic output format.
type OutputFormat string

const (
	// OutputIssues shows errors in golangci-lint format (CI-friendly).
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration).
	OutputJSON OutputFormat = "json"
)
