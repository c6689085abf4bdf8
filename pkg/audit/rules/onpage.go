package rules

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

// TitleLengthRule checks title presence and length.
type TitleLengthRule struct {
	audit.BaseRule
}

// NewTitleLengthRule creates a new title length rule.
func NewTitleLengthRule() *TitleLengthRule {
	return &TitleLengthRule{
		BaseRule: audit.NewBaseRule(
			"SEO001",
			"title-length",
			"Pages should have a title between 30 and 60 characters",
			audit.CategoryOnPage,
		),
	}
}

// Apply checks the trimmed character length of the title element.
// Lengths of exactly 30 or 60 are good; only strict over/undershoot warns.
func (r *TitleLengthRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	title := strings.TrimSpace(ctx.Page.Doc().Find("title").First().Text())
	if title == "" {
		return []audit.Finding{audit.Error(
			"Missing page title",
			"Add a descriptive title tag between 50-60 characters",
		)}, nil
	}

	length := utf8.RuneCountInString(title)
	switch {
	case length < 30:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Title too short (%d characters)", length),
			"Aim for 50-60 characters for optimal display in search results",
		)}, nil
	case length > 60:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Title too long (%d characters)", length),
			"Keep titles under 60 characters to avoid truncation",
		)}, nil
	default:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Title length is optimal (%d characters)", length),
		)}, nil
	}
}

// MetaDescriptionRule checks meta description presence and length.
type MetaDescriptionRule struct {
	audit.BaseRule
}

// NewMetaDescriptionRule creates a new meta description rule.
func NewMetaDescriptionRule() *MetaDescriptionRule {
	return &MetaDescriptionRule{
		BaseRule: audit.NewBaseRule(
			"SEO002",
			"meta-description",
			"Pages should have a meta description between 120 and 160 characters",
			audit.CategoryOnPage,
		),
	}
}

// Apply checks the meta description. 120 and 160 characters inclusive are good.
func (r *MetaDescriptionRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	desc, found := metaContent(ctx.Page.Doc(), `meta[name="description"]`)
	if !found || desc == "" {
		return []audit.Finding{audit.Error(
			"Missing meta description",
			"Add a meta description between 150-160 characters",
		)}, nil
	}

	length := utf8.RuneCountInString(desc)
	switch {
	case length < 120:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Meta description too short (%d characters)", length),
			"Aim for 150-160 characters for better search result display",
		)}, nil
	case length > 160:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Meta description too long (%d characters)", length),
			"Keep meta descriptions under 160 characters",
		)}, nil
	default:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Meta description length is optimal (%d characters)", length),
		)}, nil
	}
}

// SingleH1Rule checks that exactly one H1 exists.
type SingleH1Rule struct {
	audit.BaseRule
}

// NewSingleH1Rule creates a new single-H1 rule.
func NewSingleH1Rule() *SingleH1Rule {
	return &SingleH1Rule{
		BaseRule: audit.NewBaseRule(
			"SEO003",
			"single-h1",
			"Pages should have exactly one H1 heading",
			audit.CategoryOnPage,
		),
	}
}

// Apply counts H1 elements: zero is an error, more than one a warning.
func (r *SingleH1Rule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	count := ctx.Page.Doc().Find("h1").Length()
	switch {
	case count == 0:
		return []audit.Finding{audit.Error(
			"No H1 tag found",
			"Add exactly one H1 tag that describes the main topic",
		)}, nil
	case count > 1:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Multiple H1 tags found (%d)", count),
			"Use only one H1 tag per page",
		)}, nil
	default:
		return []audit.Finding{audit.Good("Single H1 tag found")}, nil
	}
}

// HeadingStructureRule checks overall heading usage.
type HeadingStructureRule struct {
	audit.BaseRule
}

// NewHeadingStructureRule creates a new heading structure rule.
func NewHeadingStructureRule() *HeadingStructureRule {
	return &HeadingStructureRule{
		BaseRule: audit.NewBaseRule(
			"SEO004",
			"heading-structure",
			"Pages should use multiple heading levels for structure",
			audit.CategoryOnPage,
		),
	}
}

// Apply counts h1-h6. Zero headings is left to the H1 rule; one heading warns.
func (r *HeadingStructureRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	count := ctx.Page.Doc().Find("h1, h2, h3, h4, h5, h6").Length()
	switch {
	case count > 1:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("%d headings found - good for structure", count),
		)}, nil
	case count == 1:
		return []audit.Finding{audit.Warn(
			"Only one heading found",
			"Add more headings (H2, H3) to improve content structure",
		)}, nil
	default:
		return nil, nil
	}
}

// ImageAltRule checks alt text coverage on images.
type ImageAltRule struct {
	audit.BaseRule
}

// NewImageAltRule creates a new image alt text rule.
func NewImageAltRule() *ImageAltRule {
	return &ImageAltRule{
		BaseRule: audit.NewBaseRule(
			"SEO005",
			"image-alt",
			"All images should carry non-empty alt text",
			audit.CategoryOnPage,
		),
	}
}

// Apply emits nothing when the page has no images.
func (r *ImageAltRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	images := ctx.Page.Doc().Find("img")
	total := images.Length()
	if total == 0 {
		return nil, nil
	}

	missing := 0
	images.Each(func(_ int, sel *goquery.Selection) {
		alt, _ := sel.Attr("alt")
		if strings.TrimSpace(alt) == "" {
			missing++
		}
	})

	if missing == 0 {
		return []audit.Finding{audit.Good(
			fmt.Sprintf("All %d images have alt text", total),
		)}, nil
	}
	return []audit.Finding{audit.Warn(
		fmt.Sprintf("%d of %d images missing alt text", missing, total),
		"Add descriptive alt text to all images for accessibility and SEO",
	)}, nil
}

// LinkProfileRule counts internal and external links.
type LinkProfileRule struct {
	audit.BaseRule
}

// NewLinkProfileRule creates a new link profile rule.
func NewLinkProfileRule() *LinkProfileRule {
	return &LinkProfileRule{
		BaseRule: audit.NewBaseRule(
			"SEO006",
			"link-profile",
			"Pages should link internally; external links are a positive signal",
			audit.CategoryOnPage,
		),
	}
}

// Apply classifies anchors by hostname match. External links have no
// negative case; only missing internal links warn.
func (r *LinkProfileRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	host := ctx.Page.Hostname()
	internal, external := 0, 0

	ctx.Page.Doc().Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		switch {
		case strings.HasPrefix(href, "http") && !containsHost(href, host):
			external++
		case strings.HasPrefix(href, "/") || containsHost(href, host):
			internal++
		}
	})

	var findings []audit.Finding
	if internal > 0 {
		findings = append(findings, audit.Good(fmt.Sprintf("%d internal links found", internal)))
	} else {
		findings = append(findings, audit.Warn(
			"No internal links found",
			"Add internal links to improve site navigation and SEO",
		))
	}
	if external > 0 {
		findings = append(findings, audit.Good(fmt.Sprintf("%d external links found", external)))
	}
	return findings, nil
}

// URLFormatRule checks URL hygiene.
type URLFormatRule struct {
	audit.BaseRule
}

// NewURLFormatRule creates a new URL format rule.
func NewURLFormatRule() *URLFormatRule {
	return &URLFormatRule{
		BaseRule: audit.NewBaseRule(
			"SEO007",
			"url-format",
			"URLs should be short, lowercase, hyphenated, and parameter-light",
			audit.CategoryOnPage,
		),
	}
}

// Apply runs four independent checks; several may warn at once.
func (r *URLFormatRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	u := ctx.Page.URL()
	full := u.String()

	var findings []audit.Finding
	if len(full) > 115 {
		findings = append(findings, audit.Warn(
			fmt.Sprintf("Long URL (%d chars)", len(full)),
			"Keep URLs concise (<115 characters) and human-readable",
		))
	}
	if strings.IndexFunc(full, unicode.IsUpper) >= 0 {
		findings = append(findings, audit.Warn(
			"URL contains uppercase letters",
			"Use lowercase for consistency and to avoid duplicates",
		))
	}
	if strings.Contains(u.Path, "_") {
		findings = append(findings, audit.Warn(
			"URL contains underscores",
			"Prefer hyphens (-) in URLs",
		))
	}
	if ctx.Page.QueryParamCount() > 2 {
		findings = append(findings, audit.Warn(
			"URL has many query parameters",
			"Avoid long query strings on indexable pages",
		))
	}
	return findings, nil
}

// MultimediaRule detects video content.
type MultimediaRule struct {
	audit.BaseRule
}

// NewMultimediaRule creates a new multimedia rule.
func NewMultimediaRule() *MultimediaRule {
	return &MultimediaRule{
		BaseRule: audit.NewBaseRule(
			"SEO008",
			"multimedia",
			"Video or embedded media is a positive engagement signal",
			audit.CategoryOnPage,
		),
	}
}

// Apply is a good-only signal: absence emits nothing.
func (r *MultimediaRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if exists(ctx.Page.Doc(), `video, iframe[src*="youtube.com"], iframe[src*="vimeo.com"]`) {
		return []audit.Finding{audit.Good("Multimedia detected (video/iframe)")}, nil
	}
	return nil, nil
}

// KeywordDensityRule checks for keyword stuffing.
type KeywordDensityRule struct {
	audit.BaseRule
}

// NewKeywordDensityRule creates a new keyword density rule.
func NewKeywordDensityRule() *KeywordDensityRule {
	return &KeywordDensityRule{
		BaseRule: audit.NewBaseRule(
			"SEO009",
			"keyword-density",
			"No single keyword should exceed 3% of the page's tokens",
			audit.CategoryOnPage,
		),
	}
}

// Apply tokenizes the visible text on whitespace, lowercased. Frequency is
// tracked for tokens longer than three characters, but density is the top
// token's share of ALL tokens. Ties break to the lexicographically smallest
// token so the pass stays deterministic.
func (r *KeywordDensityRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	tokens := strings.Fields(strings.ToLower(ctx.Page.Text()))

	freq := make(map[string]int)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > 3 {
			freq[tok]++
		}
	}
	if len(freq) == 0 {
		return nil, nil
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	top := words[0]
	density := percent(freq[top], len(tokens))
	if density > 3 {
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("High keyword density for %q (%.1f%%)", top, density),
			"Reduce keyword repetition to avoid over-optimization",
		)}, nil
	}
	return []audit.Finding{audit.Good("Good keyword distribution detected")}, nil
}
