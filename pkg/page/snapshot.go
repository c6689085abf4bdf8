// Package page provides an immutable snapshot of a fetched HTML document,
// the single input surface the audit rules inspect.
package page

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Timing carries navigation timing measurements in milliseconds.
// A zero value means the measurement was not taken (plain HTTP fetch).
type Timing struct {
	// ResponseStart is the time to first byte.
	ResponseStart float64
	// LoadEventEnd is the time at which the load event completed.
	LoadEventEnd float64
}

// Snapshot is a parsed page frozen at collection time. It is immutable after
// construction; the lazily built text and structured-data views are caches,
// not state, and an analysis pass touches a snapshot from one goroutine only.
type Snapshot struct {
	url      *url.URL
	doc      *goquery.Document
	htmlSize int
	timing   Timing

	text  *string
	words []string
	ld    *StructuredData
}

// New reads and parses an HTML document. The raw byte length of the document
// is retained for the text-to-HTML ratio rule.
func New(rawURL string, r io.Reader, timing Timing) (*Snapshot, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return &Snapshot{
		url:      u,
		doc:      doc,
		htmlSize: len(raw),
		timing:   timing,
	}, nil
}

// NewFromHTML builds a snapshot from an HTML string. Used by tests and by the
// headless collector, which already holds the serialized document.
func NewFromHTML(rawURL, html string, timing Timing) (*Snapshot, error) {
	return New(rawURL, strings.NewReader(html), timing)
}

// URL returns the page URL.
func (s *Snapshot) URL() *url.URL { return s.url }

// Doc returns the parsed document for selector queries.
func (s *Snapshot) Doc() *goquery.Document { return s.doc }

// HTMLSize returns the byte length of the serialized document.
func (s *Snapshot) HTMLSize() int { return s.htmlSize }

// Timing returns the navigation timing measurements.
func (s *Snapshot) Timing() Timing { return s.timing }

// Hostname returns the host of the page URL without port.
func (s *Snapshot) Hostname() string { return s.url.Hostname() }

// IsHTTPS reports whether the page was served over HTTPS.
func (s *Snapshot) IsHTTPS() bool { return s.url.Scheme == "https" }

// QueryParamCount returns the number of non-empty query parameters.
func (s *Snapshot) QueryParamCount() int {
	n := 0
	for _, vs := range s.url.Query() {
		n += len(vs)
	}
	return n
}
