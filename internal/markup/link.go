package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkAt returns the href of the anchor element enclosing the given rune
// offset in content, if there is one.
func LinkAt(content string, offset int) (string, bool) {
	runes := []rune(content)
	if offset < 0 || offset > len(runes) {
		return "", false
	}
	pos := len(string(runes[:offset]))

	lower := strings.ToLower(content)
	start := -1
	for _, prefix := range []string{"<a ", "<a>"} {
		if i := strings.LastIndex(lower[:pos], prefix); i > start {
			start = i
		}
	}
	if start < 0 {
		return "", false
	}

	end := strings.Index(lower[start:], "</a>")
	if end < 0 || start+end+len("</a>") < pos {
		return "", false
	}
	return anchorHref(content[start : start+end+len("</a>")])
}

// anchorHref tokenizes a single anchor element and pulls out its href.
func anchorHref(tag string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(tag))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.A {
				continue
			}
			for _, a := range tok.Attr {
				if a.Key == "href" {
					return a.Val, true
				}
			}
			return "", false
		}
	}
}
