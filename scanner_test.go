package stylewrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "regular go file",
			path:     "/tmp/project/internal/ui/card.go",
			expected: false,
		},
		{
			name:     "test file",
			path:     "/tmp/project/internal/ui/card_test.go",
			expected: true,
		},
		{
			name:     "non-go file",
			path:     "/tmp/project/web/styles/card.css",
			expected: true,
		},
		{
			name:     "markdown file",
			path:     "/tmp/project/README.md",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldSkipFile(tt.path))
		})
	}
}

func TestExpandGlobPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ui"), 0o755))

	for _, name := range []string{
		"ui/card.go",
		"ui/nav.go",
		"ui/card_test.go",
		"ui/styles.css",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package ui\n"), 0o644))
	}

	files, stats, err := expandGlobPatterns([]string{filepath.Join(dir, "**", "*")})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 2, stats.FilesSkipped)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, ".go", filepath.Ext(f))
	}
}

func TestExpandGlobPatternsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "card.go")
	require.NoError(t, os.WriteFile(file, []byte("package ui\n"), 0o644))

	// Two patterns matching the same file must yield it once.
	files, _, err := expandGlobPatterns([]string{
		filepath.Join(dir, "*.go"),
		filepath.Join(dir, "card.go"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}
