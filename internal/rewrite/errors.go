package rewrite

import (
	"fmt"
	"go/token"
)

// ArgumentError reports a malformed or misplaced directive: a missing or
// non-literal style path, an unknown verb, or a directive that is not
// followed by a function declaration. It is raised before any file access.
type ArgumentError struct {
	Pos    token.Position
	Detail string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Detail)
}

// ResolutionError reports a style file that could not be read at rewrite
// time. Path is the path as written at the directive site, not the resolved
// absolute path, so the message points at what the author typed.
type ResolutionError struct {
	Pos  token.Position
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: cannot read style file %q: %v", e.Pos, e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// SynthesisError reports a spliced replacement body that does not parse as
// valid Go, wrapping the underlying parser diagnostic. A file that trips
// this is never emitted.
type SynthesisError struct {
	Pos token.Position
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("%s: synthesized component body does not parse: %v", e.Pos, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }
