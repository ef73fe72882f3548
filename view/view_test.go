package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "element with text",
			node: El("p", Text("Hello")),
			want: "<p>Hello</p>",
		},
		{
			name: "text is escaped",
			node: El("p", Text(`<b>&"bold"</b>`)),
			want: "<p>&lt;b&gt;&amp;&#34;bold&#34;&lt;/b&gt;</p>",
		},
		{
			name: "raw is not escaped",
			node: El("p", Raw("<b>bold</b>")),
			want: "<p><b>bold</b></p>",
		},
		{
			name: "attributes",
			node: El("a", Text("home")).Attr("href", "/").Attr("class", "nav"),
			want: `<a href="/" class="nav">home</a>`,
		},
		{
			name: "attribute value is escaped",
			node: El("div").Attr("title", `say "hi" & <bye>`),
			want: `<div title="say &quot;hi&quot; &amp; &lt;bye&gt;"></div>`,
		},
		{
			name: "group renders children in order",
			node: Group(El("p", Text("a")), El("p", Text("b"))),
			want: "<p>a</p><p>b</p>",
		},
		{
			name: "nil children are skipped",
			node: Group(nil, El("p", Text("a")), nil),
			want: "<p>a</p>",
		},
		{
			name: "nested elements",
			node: El("ul", El("li", Text("one")), El("li", Text("two"))),
			want: "<ul><li>one</li><li>two</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleContentsAreVerbatim(t *testing.T) {
	// CSS is opaque: unbalanced braces and markup-looking text must pass
	// through untouched.
	css := `#card863 { p { color: <red>; } }`
	got, err := Render(Style(css))
	require.NoError(t, err)
	assert.Equal(t, "<style>"+css+"</style>", got)
}

func TestContainer(t *testing.T) {
	got, err := Render(Container("card863", El("p", Text("Hello"))))
	require.NoError(t, err)
	assert.Equal(t, `<div id="card863"><p>Hello</p></div>`, got)
}

// TestScopedWrappingShape pins the exact output contract of a rewritten
// component: a style element holding the scoped CSS, followed by a container
// carrying the derived id, enclosing the original view.
func TestScopedWrappingShape(t *testing.T) {
	originalView := El("p", Text("Hello"))
	wrapped := Group(
		Style("#card863 { p { color: blue; } }"),
		Container("card863", originalView),
	)

	got, err := Render(wrapped)
	require.NoError(t, err)
	assert.Equal(t,
		`<style>#card863 { p { color: blue; } }</style>`+
			`<div id="card863"><p>Hello</p></div>`,
		got)
}
