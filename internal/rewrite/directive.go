// Package rewrite implements the scoped-style source transformation.
//
// Directives are line comments in the form:
//
//	//stylewrap:styles "web/styles/card.css"
//
// placed in the doc comment of a component function. The rewriter derives a
// deterministic identifier from the style file's stem, inlines the file's
// contents as a single rule scoped to that identifier, and replaces the
// function body with one that wraps the original view in a style element and
// an identified container.
//
// A rewritten directive is emitted as //stylewrap:styled so that running the
// tool twice does not wrap a component twice.
package rewrite

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

const (
	directivePrefix = "//stylewrap:"
	verbStyles      = "styles"
	verbStyled      = "styled"
)

// Target is one annotated component function awaiting rewrite.
type Target struct {
	Fn        *ast.FuncDecl
	StylePath string         // path argument as written, unquoted
	Pos       token.Position // directive comment position
	Comment   *ast.Comment   // the directive comment itself
}

// Discover scans a parsed file for stylewrap directives and matches each to
// the function declaration it documents. It never reads the style files;
// argument errors surface here, before any file access.
func Discover(fset *token.FileSet, f *ast.File) ([]Target, error) {
	type pending struct {
		path    string
		pos     token.Position
		comment *ast.Comment
	}
	commentToDirective := make(map[token.Pos]pending)

	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if !strings.HasPrefix(c.Text, directivePrefix) {
				continue
			}

			pos := fset.Position(c.Pos())
			rest := strings.TrimPrefix(c.Text, directivePrefix)
			verb, arg, _ := strings.Cut(rest, " ")

			switch verb {
			case verbStyles:
				path, err := parsePathArgument(arg, pos)
				if err != nil {
					return nil, err
				}
				commentToDirective[cg.End()] = pending{path: path, pos: pos, comment: c}
			case verbStyled:
				// Already rewritten; leave it alone.
			default:
				return nil, &ArgumentError{
					Pos:    pos,
					Detail: "unknown directive //stylewrap:" + verb,
				}
			}
		}
	}

	var targets []Target
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		if p, ok := commentToDirective[fn.Doc.End()]; ok {
			targets = append(targets, Target{
				Fn:        fn,
				StylePath: p.path,
				Pos:       p.pos,
				Comment:   p.comment,
			})
			delete(commentToDirective, fn.Doc.End())
		}
	}

	// A directive that does not document a function has nothing to rewrite.
	for _, p := range commentToDirective {
		return nil, &ArgumentError{
			Pos:    p.pos,
			Detail: "//stylewrap:styles directive must be followed by a function declaration",
		}
	}

	return targets, nil
}

// parsePathArgument validates the single required argument: a quoted string
// literal naming the style file.
func parsePathArgument(arg string, pos token.Position) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", &ArgumentError{
			Pos:    pos,
			Detail: "missing style path argument, want //stylewrap:styles \"path/to.css\"",
		}
	}

	path, err := strconv.Unquote(arg)
	if err != nil {
		return "", &ArgumentError{
			Pos:    pos,
			Detail: "style path must be a quoted string literal, got " + arg,
		}
	}
	return path, nil
}
