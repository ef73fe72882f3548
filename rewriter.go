package stylewrap

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/stylewrap/internal/rewrite"
)

// Stdout is where rewritten source is printed when Config.Write and
// Config.Check are both false. Overridable for tests.
var Stdout io.Writer = os.Stdout

// Rewrite is the main entry point
func Rewrite(config Config) (*Result, error) {
	// 1. Scan for candidate Go files
	files, stats, err := expandGlobPatterns(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &Result{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}

	if config.Verbose {
		fmt.Printf("Found %d Go files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	// 2. Transform each file independently. A failing component aborts its
	// own file only; every other file proceeds.
	for _, file := range files {
		if err := rewriteFile(file, config, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// rewriteFile runs the full transform for one source file. Component-level
// failures become issues on result; only environmental failures (unwritable
// output) abort the run.
func rewriteFile(file string, config Config, result *Result) error {
	src, err := os.ReadFile(file)
	if err != nil {
		result.Issues = append(result.Issues, issueFromError(file, nil, err))
		result.ErrorCount++
		return nil
	}

	root := config.ProjectRoot
	if root == "" {
		root = rewrite.FindProjectRoot(filepath.Dir(file))
	}

	out, components, err := rewrite.RewriteSource(src, file, root)
	if err != nil {
		result.Issues = append(result.Issues, issueFromError(file, src, err))
		result.ErrorCount++
		return nil
	}
	if out == nil {
		// No pending directives.
		return nil
	}

	for _, c := range components {
		result.Components = append(result.Components, Component{
			File:      file,
			FuncName:  c.FuncName,
			Ident:     c.Ident,
			StylePath: c.StylePath,
		})
		if config.Verbose {
			fmt.Printf("Rewrote %s in %s (id %s, styles %s)\n", c.FuncName, file, c.Ident, c.StylePath)
		}
	}
	result.FilesRewritten++

	switch {
	case config.Check:
		// Full pipeline, no emission.
	case config.Write:
		if err := os.WriteFile(file, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
	default:
		if _, err := Stdout.Write(out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

// issueFromError converts a per-component failure into a golangci-lint
// shaped issue pointing at the directive site.
func issueFromError(file string, src []byte, err error) Issue {
	pos := token.Position{Filename: file, Line: 1, Column: 1}

	var argErr *ArgumentError
	var resErr *ResolutionError
	var synErr *SynthesisError
	switch {
	case errors.As(err, &argErr):
		pos = argErr.Pos
	case errors.As(err, &resErr):
		pos = resErr.Pos
	case errors.As(err, &synErr):
		pos = synErr.Pos
	}
	if pos.Filename == "" {
		pos.Filename = file
	}

	// The typed errors prefix their message with the position; the reporter
	// prints the location itself, so strip the duplicate.
	text := strings.TrimPrefix(err.Error(), pos.String()+": ")

	var sourceLines []string
	if line := sourceLine(src, pos.Line); line != "" {
		sourceLines = []string{line}
	}

	return Issue{
		FromLinter:  linterName,
		Text:        text,
		Severity:    SeverityError,
		SourceLines: sourceLines,
		Pos: IssuePos{
			Filename: pos.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	}
}

// sourceLine returns the n-th (1-based) line of src, or "".
func sourceLine(src []byte, n int) string {
	if n < 1 || src == nil {
		return ""
	}
	lines := strings.Split(string(src), "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
