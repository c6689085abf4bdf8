package page

import (
	"strings"

	"golang.org/x/net/html"
)

// nonVisibleTags are elements whose text content a reader never sees.
var nonVisibleTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Text returns the visible body text of the page: every text node under body
// except those inside script, style, noscript, or template elements, trimmed
// and joined with single spaces. The result is cached.
func (s *Snapshot) Text() string {
	if s.text != nil {
		return *s.text
	}

	var parts []string
	for _, node := range s.doc.Find("body").Nodes {
		collectText(node, &parts)
	}
	text := strings.Join(parts, " ")
	s.text = &text
	return text
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && nonVisibleTags[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// Words returns the whitespace-delimited tokens of the visible text. The
// result is cached; callers must not mutate it.
func (s *Snapshot) Words() []string {
	if s.words == nil {
		s.words = strings.Fields(s.Text())
		if s.words == nil {
			s.words = []string{}
		}
	}
	return s.words
}
