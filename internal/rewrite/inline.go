package rewrite

import (
	"go/token"
	"os"
	"path/filepath"
)

// Inline reads the style file named at the directive site and returns the
// scoped rule baked into the rewritten component:
//
//	#<ident> { <raw file contents> }
//
// Contents are opaque: no CSS parsing, no escaping, no trimming. The read
// happens exactly once, at rewrite time; the emitted source carries the
// result as a string literal and never touches the filesystem again.
func Inline(root, path, ident string, pos token.Position) (string, error) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(root, resolved)
	}

	contents, err := os.ReadFile(resolved)
	if err != nil {
		return "", &ResolutionError{Pos: pos, Path: path, Err: err}
	}

	return "#" + ident + " { " + string(contents) + " }", nil
}

// FindProjectRoot walks up from dir looking for a go.mod, the directory
// style paths are resolved against. Falls back to dir itself when no module
// root is found.
func FindProjectRoot(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	for cur := abs; ; {
		if _, err := os.Stat(filepath.Join(cur, "go.mod")); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs
		}
		cur = parent
	}
}
