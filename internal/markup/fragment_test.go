package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkFragment(t *testing.T) {
	got := LinkFragment("https://x.test", "label")
	assert.Equal(t, `<a href="https://x.test" style="color: blue; text-decoration: underline;">label</a>`, got)
}

func TestLinkFragmentDefaultsText(t *testing.T) {
	got := LinkFragment("https://x.test", "")
	assert.Equal(t, `<a href="https://x.test" style="color: blue; text-decoration: underline;">https://x.test</a>`, got)

	got = LinkFragment("https://x.test", "  \t ")
	assert.Contains(t, got, ">https://x.test</a>")
}

func TestLinkFragmentDoesNotEscape(t *testing.T) {
	// Known gap carried over from the original: quotes pass through
	// verbatim and corrupt the markup.
	got := LinkFragment(`https://x.test/"q`, `a"b`)
	assert.Contains(t, got, `href="https://x.test/"q"`)
	assert.Contains(t, got, `>a"b</a>`)
}

func TestParseFragment(t *testing.T) {
	assert.NoError(t, ParseFragment("<h1>Heading</h1>"))
	assert.NoError(t, ParseFragment("plain text"))
	assert.NoError(t, ParseFragment("<em>unclosed"))
	assert.NoError(t, ParseFragment(""))
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"<html><head><title>My Doc</title></head><body></body></html>", "My Doc"},
		{"<html><body><h1>Top Heading</h1><p>x</p></body></html>", "Top Heading"},
		{"<html><body><h2> spaced </h2></body></html>", "spaced"},
		{"<html><body><p>just text</p></body></html>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DocumentTitle(tt.content), "DocumentTitle(%q)", tt.content)
	}
}

func TestLinkAt(t *testing.T) {
	content := `<p>a <a href="https://x.test">link</a> b</p>`
	inside := strings.Index(content, "link") + 2

	href, ok := LinkAt(content, inside)
	assert.True(t, ok)
	assert.Equal(t, "https://x.test", href)

	// Before the anchor.
	_, ok = LinkAt(content, 3)
	assert.False(t, ok)

	// After the closing tag.
	_, ok = LinkAt(content, strings.Index(content, " b</p>")+1)
	assert.False(t, ok)

	// Out of range.
	_, ok = LinkAt(content, -1)
	assert.False(t, ok)
	_, ok = LinkAt(content, len([]rune(content))+1)
	assert.False(t, ok)
}

func TestLinkAtNoHref(t *testing.T) {
	content := `<p><a name="x">anchor</a></p>`
	_, ok := LinkAt(content, strings.Index(content, "anchor")+2)
	assert.False(t, ok)
}

func TestDefaultDocumentParses(t *testing.T) {
	assert.NoError(t, ParseFragment(DefaultDocument))
	assert.Contains(t, DefaultDocument, "<p>")
}
