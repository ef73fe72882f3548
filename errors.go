package stylewrap

import "github.com/yacobolo/stylewrap/internal/rewrite"

// The rewriter's error taxonomy, re-exported so callers can errors.As
// against the public package. All three are build-time errors reported at
// the directive site; none defer to when the component later renders.
type (
	// ArgumentError: the style path argument is missing or not a string
	// literal, or the directive is malformed or misplaced.
	ArgumentError = rewrite.ArgumentError
	// ResolutionError: the style file cannot be read at rewrite time.
	ResolutionError = rewrite.ResolutionError
	// SynthesisError: the spliced replacement body does not parse.
	SynthesisError = rewrite.SynthesisError
)
