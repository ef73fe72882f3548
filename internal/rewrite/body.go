package rewrite

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// viewImport is the package the synthesized bodies depend on.
const viewImport = "github.com/yacobolo/stylewrap/view"

// Rewritten records one successfully rewritten component.
type Rewritten struct {
	FuncName  string
	Ident     string
	StylePath string
}

// splice is a single byte-range replacement over the original source.
type splice struct {
	start, end int
	text       string
}

// RewriteSource transforms all annotated component functions in one Go
// source file. root is the directory style paths are resolved against.
//
// The returned source is gofmt-formatted and imports the view package. A nil
// first return with a nil error means the file holds no pending directives
// and should be left untouched. Any error means the file must not be
// emitted: transformation is all-or-nothing per file.
func RewriteSource(src []byte, filename, root string) ([]byte, []Rewritten, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	targets, err := Discover(fset, f)
	if err != nil {
		return nil, nil, err
	}
	if len(targets) == 0 {
		return nil, nil, nil
	}

	var splices []splice
	var rewritten []Rewritten

	for _, target := range targets {
		if err := validateTarget(target); err != nil {
			return nil, nil, err
		}

		ident := Derive(target.StylePath)
		styleText, err := Inline(root, target.StylePath, ident, target.Pos)
		if err != nil {
			return nil, nil, err
		}

		splices = append(splices,
			bodySplice(src, fset, target, ident, styleText),
			consumeDirective(fset, target.Comment),
		)
		rewritten = append(rewritten, Rewritten{
			FuncName:  target.Fn.Name.Name,
			Ident:     ident,
			StylePath: target.StylePath,
		})
	}

	out := applySplices(src, splices)

	// Round-trip the spliced text through the parser. Splicing is textual,
	// so this is the structural check that the composed body is valid Go.
	fset2 := token.NewFileSet()
	f2, err := parser.ParseFile(fset2, filename, out, parser.ParseComments)
	if err != nil {
		return nil, nil, &SynthesisError{Pos: targets[0].Pos, Err: err}
	}

	astutil.AddImport(fset2, f2, viewImport)

	var buf bytes.Buffer
	if err := format.Node(&buf, fset2, f2); err != nil {
		return nil, nil, &SynthesisError{Pos: targets[0].Pos, Err: err}
	}

	return buf.Bytes(), rewritten, nil
}

// validateTarget rejects functions the binding closure cannot be built for.
// The signature itself is never modified, but the synthesized body rebinds
// the function's single result, so it must have exactly one.
func validateTarget(t Target) error {
	if t.Fn.Body == nil {
		return &SynthesisError{
			Pos: t.Pos,
			Err: errors.New("component function has no body"),
		}
	}
	results := t.Fn.Type.Results
	if results == nil || len(results.List) != 1 || len(results.List[0].Names) > 1 {
		return &SynthesisError{
			Pos: t.Pos,
			Err: errors.New("component function must return exactly one renderable result"),
		}
	}
	return nil
}

// bodySplice builds the replacement body for one target. The original body
// is evaluated by an immediately-invoked closure with the function's own
// result type, its value bound, and the bound view wrapped in a style
// element plus an identified container:
//
//	{
//		originalView := func() <results> <original body>()
//		return view.Group(
//			view.Style("#<ident> { <css> }"),
//			view.Container("<ident>", originalView),
//		)
//	}
//
// Everything outside the body's byte range is preserved verbatim.
func bodySplice(src []byte, fset *token.FileSet, t Target, ident, styleText string) splice {
	resultsText := sliceText(src, fset, t.Fn.Type.Results)
	bodyText := sliceText(src, fset, t.Fn.Body)

	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString("\toriginalView := func() " + resultsText + " " + bodyText + "()\n")
	sb.WriteString("\treturn view.Group(\n")
	sb.WriteString("\t\tview.Style(" + strconv.Quote(styleText) + "),\n")
	sb.WriteString("\t\tview.Container(" + strconv.Quote(ident) + ", originalView),\n")
	sb.WriteString("\t)\n")
	sb.WriteString("}")

	return splice{
		start: fset.Position(t.Fn.Body.Pos()).Offset,
		end:   fset.Position(t.Fn.Body.End()).Offset,
		text:  sb.String(),
	}
}

// consumeDirective rewrites //stylewrap:styles to //stylewrap:styled so a
// second run skips the already-wrapped component.
func consumeDirective(fset *token.FileSet, c *ast.Comment) splice {
	return splice{
		start: fset.Position(c.Pos()).Offset,
		end:   fset.Position(c.End()).Offset,
		text:  strings.Replace(c.Text, directivePrefix+verbStyles, directivePrefix+verbStyled, 1),
	}
}

// applySplices replaces the given byte ranges, working back to front so
// earlier offsets stay valid. Ranges never overlap: each target contributes
// its directive comment and its function body.
func applySplices(src []byte, splices []splice) []byte {
	sort.Slice(splices, func(i, j int) bool { return splices[i].start > splices[j].start })

	out := make([]byte, len(src))
	copy(out, src)
	for _, s := range splices {
		out = append(out[:s.start], append([]byte(s.text), out[s.end:]...)...)
	}
	return out
}

// sliceText returns the original source text of a node, byte for byte.
func sliceText(src []byte, fset *token.FileSet, node ast.Node) string {
	return string(src[fset.Position(node.Pos()).Offset:fset.Position(node.End()).Offset])
}
