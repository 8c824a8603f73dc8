package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultDocument is the placeholder markup every fresh document starts
// from, both at startup and after a New command.
const DefaultDocument = "<html><body style='font-family: Arial, sans-serif; font-size: 14px;'>" +
	"<p>Start typing...</p></body></html>"

// HeadingFragment is the markup inserted by the Insert Heading command.
const HeadingFragment = "<h1>Heading</h1>"

// LinkFragment builds the anchor markup inserted by the Insert Link
// command. Blank display text falls back to the URL. Neither field is
// escaped; a quote character in either will break the generated markup.
func LinkFragment(url, text string) string {
	if strings.TrimSpace(text) == "" {
		text = url
	}
	return fmt.Sprintf(`<a href="%s" style="color: blue; text-decoration: underline;">%s</a>`, url, text)
}

// ParseFragment checks that s is accepted by the HTML parser as body
// content. The parser is tolerant, so rejection is rare, but callers
// must not insert anything it refuses.
func ParseFragment(s string) error {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	if _, err := html.ParseFragment(strings.NewReader(s), ctx); err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	return nil
}

// DocumentTitle extracts a display name from document markup: the
// <title> text when present, otherwise the first heading.
func DocumentTitle(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}
	if t := findTitle(doc); t != "" {
		return t
	}
	return findHeading(doc)
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		if n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findHeading(n *html.Node) string {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			return strings.TrimSpace(collectText(n))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findHeading(c); t != "" {
			return t
		}
	}
	return ""
}

func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
