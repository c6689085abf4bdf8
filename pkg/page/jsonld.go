package page

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
)

// StructuredData summarizes the JSON-LD blocks found on a page.
type StructuredData struct {
	// Blocks is the number of script[type="application/ld+json"] elements.
	Blocks int

	// Valid is the number of blocks that parsed and carried an @context or
	// @type key.
	Valid int

	// Types holds every @type value found, including nested objects, in
	// document order. Duplicates are preserved.
	Types []string

	// First-seen metadata values, used by the freshness and local rules.
	DatePublished string
	Telephone     string
	HasAddress    bool
	HasRating     bool
}

// StructuredData parses the page's JSON-LD blocks. Unparseable blocks are
// counted but contribute nothing; parsing never fails. The result is cached.
func (s *Snapshot) StructuredData() *StructuredData {
	if s.ld != nil {
		return s.ld
	}

	ld := &StructuredData{}
	s.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		ld.Blocks++

		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}
		if hasRootKeys(data) {
			ld.Valid++
		}
		collectLD(data, ld)
	})

	s.ld = ld
	return ld
}

// hasRootKeys reports whether a parsed block (or any element of a top-level
// array) carries @context or @type.
func hasRootKeys(data any) bool {
	switch v := data.(type) {
	case map[string]any:
		_, hasCtx := v["@context"]
		_, hasType := v["@type"]
		return hasCtx || hasType
	case []any:
		for _, item := range v {
			if hasRootKeys(item) {
				return true
			}
		}
	}
	return false
}

// collectLD walks a parsed JSON-LD value, gathering types and the first-seen
// metadata fields.
func collectLD(data any, ld *StructuredData) {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			collectLD(item, ld)
		}
	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			ld.Types = append(ld.Types, t)
		case []any:
			for _, x := range t {
				if s, ok := x.(string); ok {
					ld.Types = append(ld.Types, s)
				}
			}
		}
		if s, ok := v["datePublished"].(string); ok && ld.DatePublished == "" {
			ld.DatePublished = s
		}
		if s, ok := v["telephone"].(string); ok && ld.Telephone == "" {
			ld.Telephone = s
		}
		if _, ok := v["address"]; ok {
			ld.HasAddress = true
		}
		if _, ok := v["aggregateRating"]; ok {
			ld.HasRating = true
		}
		for _, nested := range v {
			collectLD(nested, ld)
		}
	}
}
