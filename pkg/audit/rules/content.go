package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

// ContentLengthRule checks the visible word count.
type ContentLengthRule struct {
	audit.BaseRule
}

// NewContentLengthRule creates a new content length rule.
func NewContentLengthRule() *ContentLengthRule {
	return &ContentLengthRule{
		BaseRule: audit.NewBaseRule(
			"SEO040",
			"content-length",
			"Pages should carry at least 300 words of visible text",
			audit.CategoryContent,
		),
	}
}

func (r *ContentLengthRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	words := len(ctx.Page.Words())
	switch {
	case words < 300:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Low content length (%d words)", words),
			"Aim for at least 300 words for better SEO performance",
		)}, nil
	case words > 2000:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Comprehensive content (%d words)", words),
		)}, nil
	default:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Good content length (%d words)", words),
		)}, nil
	}
}

// ReadabilityRule checks average sentence length.
type ReadabilityRule struct {
	audit.BaseRule
}

// NewReadabilityRule creates a new readability rule.
func NewReadabilityRule() *ReadabilityRule {
	return &ReadabilityRule{
		BaseRule: audit.NewBaseRule(
			"SEO041",
			"readability",
			"Average sentence length should sit between 10 and 25 words",
			audit.CategoryContent,
		),
	}
}

// Apply splits on sentence-ending punctuation. Pages with no sentences emit
// nothing.
func (r *ReadabilityRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	sentences := 0
	for _, s := range strings.FieldsFunc(ctx.Page.Text(), func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return nil, nil
	}

	avg := float64(len(ctx.Page.Words())) / float64(sentences)
	switch {
	case avg > 25:
		return []audit.Finding{audit.Warn(
			"Long sentences detected",
			"Break up long sentences for better readability",
		)}, nil
	case avg < 10:
		return []audit.Finding{audit.Warn(
			"Very short sentences detected",
			"Consider combining some short sentences for better flow",
		)}, nil
	default:
		return []audit.Finding{audit.Good("Good sentence length for readability")}, nil
	}
}

// TextHTMLRatioRule checks the share of visible text in the raw HTML.
type TextHTMLRatioRule struct {
	audit.BaseRule
}

// NewTextHTMLRatioRule creates a new text-to-HTML ratio rule.
func NewTextHTMLRatioRule() *TextHTMLRatioRule {
	return &TextHTMLRatioRule{
		BaseRule: audit.NewBaseRule(
			"SEO042",
			"text-html-ratio",
			"Visible text should exceed 25% of the raw HTML size",
			audit.CategoryContent,
		),
	}
}

func (r *TextHTMLRatioRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	size := ctx.Page.HTMLSize()
	if size == 0 {
		return nil, nil
	}

	ratio := percent(len(ctx.Page.Text()), size)
	switch {
	case ratio > 25:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Good text-to-HTML ratio (%.1f%%)", ratio),
		)}, nil
	case ratio > 15:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Moderate text-to-HTML ratio (%.1f%%)", ratio),
			"Consider adding more text content or reducing HTML markup",
		)}, nil
	default:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Low text-to-HTML ratio (%.1f%%)", ratio),
			"Add more text content to improve content quality",
		)}, nil
	}
}

// DuplicateContentRule checks for repeated paragraph blocks.
type DuplicateContentRule struct {
	audit.BaseRule
}

// NewDuplicateContentRule creates a new duplicate content rule.
func NewDuplicateContentRule() *DuplicateContentRule {
	return &DuplicateContentRule{
		BaseRule: audit.NewBaseRule(
			"SEO043",
			"duplicate-content",
			"Substantial paragraphs should not repeat verbatim",
			audit.CategoryContent,
		),
	}
}

// Apply considers only paragraphs longer than 50 characters. Pages without
// any qualifying paragraph emit nothing.
func (r *DuplicateContentRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	seen := make(map[string]struct{})
	blocks := 0
	ctx.Page.Doc().Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 50 {
			blocks++
			seen[text] = struct{}{}
		}
	})

	switch {
	case blocks > len(seen):
		return []audit.Finding{audit.Warn(
			"Potential duplicate content detected",
			"Review content for repetitive sections",
		)}, nil
	case blocks > 0:
		return []audit.Finding{audit.Good("No duplicate content detected")}, nil
	default:
		return nil, nil
	}
}

// ContentImagesRule checks for images inside the main content region.
type ContentImagesRule struct {
	audit.BaseRule
}

// NewContentImagesRule creates a new content images rule.
func NewContentImagesRule() *ContentImagesRule {
	return &ContentImagesRule{
		BaseRule: audit.NewBaseRule(
			"SEO044",
			"content-images",
			"The main content region should contain images",
			audit.CategoryContent,
		),
	}
}

func (r *ContentImagesRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	count := ctx.Page.Doc().Find("main img, article img, .content img, #content img").Length()
	if count > 0 {
		return []audit.Finding{audit.Good(
			fmt.Sprintf("%d images found in content", count),
		)}, nil
	}
	return []audit.Finding{audit.Warn(
		"No images found in main content",
		"Consider adding relevant images to improve user engagement",
	)}, nil
}

// FreshnessRule checks the declared publication date against the pass time.
type FreshnessRule struct {
	audit.BaseRule
}

// NewFreshnessRule creates a new content freshness rule.
func NewFreshnessRule() *FreshnessRule {
	return &FreshnessRule{
		BaseRule: audit.NewBaseRule(
			"SEO045",
			"freshness",
			"Declared publication dates should be less than a year old",
			audit.CategoryContent,
		),
	}
}

// Apply looks at article:published_time and name=date meta tags, then lets a
// JSON-LD datePublished override them. Pages that declare no parseable date
// emit nothing.
func (r *FreshnessRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	var published time.Time

	// article:published_time wins over name=date regardless of document order.
	raw, ok := metaContent(ctx.Page.Doc(), `meta[property="article:published_time"]`)
	if !ok || raw == "" {
		raw, _ = metaContent(ctx.Page.Doc(), `meta[name="date"]`)
	}
	if t, ok := parseDate(raw); ok {
		published = t
	}
	if t, ok := parseDate(ctx.Page.StructuredData().DatePublished); ok {
		published = t
	}
	if published.IsZero() {
		return nil, nil
	}

	days := int(ctx.Now.Sub(published).Hours() / 24)
	if days < 365 {
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Content recently published/updated (%d days ago)", days),
		)}, nil
	}
	return []audit.Finding{audit.Warn(
		"Content may be outdated",
		"Refresh content periodically to maintain rankings",
	)}, nil
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
