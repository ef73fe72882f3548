package stylewrap

// Issue represents a single rewrite failure in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "stylewrap"
	Text        string   `json:"Text"`        // `cannot read style file "web/styles/card.css": ...`
	Severity    string   `json:"Severity"`    // "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // Directive location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "internal/ui/card.go"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 1 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// linterName is the FromLinter value on every issue this tool reports.
const linterName = "stylewrap"
