package stylewrap

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: `  //stylewrap:styles "card.css"`,
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs preserved",
			sourceLine: "\t\t//stylewrap:styles",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "start of line",
			sourceLine: "//stylewrap:styles",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{
		PrintIssuedLines: true,
		PrintLinterName:  true,
	})
	reporter.useColors = false

	reporter.PrintIssues([]Issue{
		{
			FromLinter:  linterName,
			Text:        `cannot read style file "b.css": no such file`,
			Severity:    SeverityError,
			SourceLines: []string{`//stylewrap:styles "b.css"`},
			Pos:         IssuePos{Filename: "z.go", Line: 3, Column: 1},
		},
		{
			FromLinter: linterName,
			Text:       "missing style path argument",
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: "a.go", Line: 8, Column: 1},
		},
	})

	out := buf.String()
	// Sorted by file: a.go before z.go.
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("a.go:8:1:")),
		bytes.Index(buf.Bytes(), []byte("z.go:3:1:")))
	assert.Contains(t, out, "a.go:8:1: missing style path argument (stylewrap)")
	assert.Contains(t, out, `z.go:3:1: cannot read style file "b.css": no such file (stylewrap)`)
	assert.Contains(t, out, "\t//stylewrap:styles \"b.css\"\n\t^\n")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{})
	reporter.useColors = false

	reporter.PrintSummary(Result{
		FilesScanned:   3,
		FilesRewritten: 2,
		Components:     []Component{{FuncName: "Card"}, {FuncName: "Nav"}, {FuncName: "Panel"}},
	})
	assert.Contains(t, buf.String(), "3 components rewritten in 2 files (3 scanned)")
}

func TestPrintSummaryWithIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{})
	reporter.useColors = false

	reporter.PrintSummary(Result{
		Issues: []Issue{{FromLinter: linterName, Severity: SeverityError}},
	})
	assert.Contains(t, buf.String(), "1 issue:")
	assert.Contains(t, buf.String(), "* stylewrap: 1")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{
		FilesScanned:   2,
		FilesRewritten: 1,
		Components: []Component{
			{File: "card.go", FuncName: "Card", Ident: "card863", StylePath: "card.css"},
		},
		Issues: []Issue{
			{
				FromLinter: linterName,
				Text:       "missing style path argument",
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: "nav.go", Line: 4, Column: 1},
			},
		},
		ErrorCount: 1,
	}
	require.NoError(t, WriteJSON(&buf, result))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, 2, out.Summary.FilesScanned)
	assert.Equal(t, 1, out.Summary.ComponentsRewritten)
	assert.Equal(t, 1, out.Summary.Errors)
	require.Len(t, out.Components, 1)
	assert.Equal(t, "card863", out.Components[0].Ident)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "nav.go", out.Issues[0].File)
}

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("issues", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("bogus", false))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("json", true))
}
