// Package stylewrap rewrites Go component functions to carry scoped CSS.
//
// stylewrap is a build-time source transformer. A component function returns
// a renderable view.Node; annotating it with a directive attaches a CSS file:
//
//	//stylewrap:styles "web/styles/card.css"
//	func Card() view.Node {
//		return view.El("p", view.Text("Hello"))
//	}
//
// Rewriting inlines the CSS at transformation time, derives a deterministic
// identifier from the style file's stem, and replaces the body with one that
// renders a style element and an identified container around the original
// view:
//
//	<style>#card863 { ...css... }</style>
//	<div id="card863">...original output...</div>
//
// # Library use
//
//	config := stylewrap.Config{
//		Paths: []string{"internal/ui/**/*.go"},
//		Write: true,
//	}
//	result, err := stylewrap.Rewrite(config)
//
// # CLI Tool
//
// stylewrap also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/stylewrap/cmd/stylewrap@latest
package stylewrap
