package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			// djb2 over "my_component": seed 5381, x33, mod 2^32, mod 10000.
			name: "documented example",
			path: "src/my_component.css",
			want: "my_component5949",
		},
		{
			name: "plain file name",
			path: "card.css",
			want: "card863",
		},
		{
			name: "deep path uses only the stem",
			path: "web/styles/layers/card.css",
			want: "card863",
		},
		{
			name: "no extension",
			path: "styles/button",
			want: "button6321",
		},
		{
			name: "empty path falls back",
			path: "",
			want: "component9768",
		},
		{
			name: "bare separator falls back",
			path: "/",
			want: "component9768",
		},
		{
			name: "extension-only name falls back",
			path: ".css",
			want: "component9768",
		},
		{
			name: "suffix has no zero padding",
			path: "theme.css", // hash mod 10000 == 200
			want: "theme200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.path))
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	for _, path := range []string{"card.css", "a/b/c.css", "", "übersicht.css"} {
		assert.Equal(t, Derive(path), Derive(path), "path %q", path)
	}
}

// Identifiers hash only the file-name stem, so same-named style files in
// different directories collide. That is intended behavior, not a bug: the
// identifier must be reproducible from the directive argument alone.
func TestDeriveStemCollision(t *testing.T) {
	assert.Equal(t, Derive("a/card.css"), Derive("b/card.css"))
}

func TestHashStem(t *testing.T) {
	// Raw 32-bit values, pinned so the recurrence can never drift.
	assert.Equal(t, uint32(160325949), hashStem("my_component"))
	assert.Equal(t, uint32(2090140863), hashStem("card"))
	assert.Equal(t, uint32(5381), hashStem(""))
}
