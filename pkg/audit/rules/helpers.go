// Package rules contains the built-in audit rules, one family per file.
package rules

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaContent returns the trimmed content attribute of the first element
// matching the selector, and whether the element exists at all.
func metaContent(doc *goquery.Document, selector string) (string, bool) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	content, _ := sel.Attr("content")
	return strings.TrimSpace(content), true
}

// exists reports whether any element matches the selector.
func exists(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// containsHost reports whether an href references the given hostname.
// An empty hostname never matches, so file:// and about: pages do not
// classify every link as internal.
func containsHost(href, host string) bool {
	return host != "" && strings.Contains(href, host)
}

// percent returns a/b as a percentage, or 0 when b is zero.
func percent(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b) * 100
}
