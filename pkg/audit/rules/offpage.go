package rules

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

// OpenGraphRule checks the four core Open Graph tags.
type OpenGraphRule struct {
	audit.BaseRule
}

// NewOpenGraphRule creates a new Open Graph rule.
func NewOpenGraphRule() *OpenGraphRule {
	return &OpenGraphRule{
		BaseRule: audit.NewBaseRule(
			"SEO060",
			"open-graph",
			"Pages should declare og:title, og:description, og:image, and og:url",
			audit.CategoryOffPage,
		),
	}
}

func (r *OpenGraphRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()
	count := 0
	for _, prop := range []string{"og:title", "og:description", "og:image", "og:url"} {
		if exists(doc, fmt.Sprintf(`meta[property=%q]`, prop)) {
			count++
		}
	}

	switch {
	case count == 4:
		return []audit.Finding{audit.Good("Complete Open Graph tags present")}, nil
	case count > 0:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Incomplete Open Graph tags (%d/4)", count),
			"Add missing og:title, og:description, og:image, and og:url tags",
		)}, nil
	default:
		return []audit.Finding{audit.Warn(
			"No Open Graph tags found",
			"Add Open Graph meta tags for better social media sharing",
		)}, nil
	}
}

// TwitterCardRule checks Twitter Card completeness.
type TwitterCardRule struct {
	audit.BaseRule
}

// NewTwitterCardRule creates a new Twitter Card rule.
func NewTwitterCardRule() *TwitterCardRule {
	return &TwitterCardRule{
		BaseRule: audit.NewBaseRule(
			"SEO061",
			"twitter-card",
			"Pages should declare twitter:card with title and description",
			audit.CategoryOffPage,
		),
	}
}

// Apply treats twitter:image as optional; card, title, and description form
// the complete set.
func (r *TwitterCardRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()
	card := exists(doc, `meta[name="twitter:card"]`)
	title := exists(doc, `meta[name="twitter:title"]`)
	desc := exists(doc, `meta[name="twitter:description"]`)

	switch {
	case card && title && desc:
		return []audit.Finding{audit.Good("Twitter Card tags present")}, nil
	case card:
		return []audit.Finding{audit.Warn(
			"Incomplete Twitter Card tags",
			"Add twitter:title and twitter:description for complete Twitter Cards",
		)}, nil
	default:
		return []audit.Finding{audit.Warn(
			"Twitter Card tags missing",
			"Add Twitter Card meta tags for better Twitter sharing",
		)}, nil
	}
}

// StructuredDataRule checks JSON-LD block presence and validity.
type StructuredDataRule struct {
	audit.BaseRule
}

// NewStructuredDataRule creates a new structured data rule.
func NewStructuredDataRule() *StructuredDataRule {
	return &StructuredDataRule{
		BaseRule: audit.NewBaseRule(
			"SEO062",
			"structured-data",
			"Pages should carry valid JSON-LD structured data",
			audit.CategoryOffPage,
		),
	}
}

// Apply may emit both a good finding for presence and a warning when some
// blocks fail to parse.
func (r *StructuredDataRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	ld := ctx.Page.StructuredData()
	if ld.Blocks == 0 {
		return []audit.Finding{audit.Warn(
			"No structured data found",
			"Add JSON-LD structured data for rich snippets",
		)}, nil
	}

	findings := []audit.Finding{audit.Good(
		fmt.Sprintf("Structured data found (%d JSON-LD blocks)", ld.Blocks),
	)}
	if ld.Valid != ld.Blocks {
		findings = append(findings, audit.Warn(
			"Some JSON-LD blocks may be invalid",
			"Validate your structured data using Google's Rich Results Test",
		))
	}
	return findings, nil
}

// SocialLinksRule counts links to major social platforms.
type SocialLinksRule struct {
	audit.BaseRule
}

// NewSocialLinksRule creates a new social links rule.
func NewSocialLinksRule() *SocialLinksRule {
	return &SocialLinksRule{
		BaseRule: audit.NewBaseRule(
			"SEO063",
			"social-links",
			"Pages should link to the site's social media profiles",
			audit.CategoryOffPage,
		),
	}
}

func (r *SocialLinksRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	count := ctx.Page.Doc().Find(
		`a[href*="facebook.com"], a[href*="twitter.com"], a[href*="linkedin.com"], ` +
			`a[href*="instagram.com"], a[href*="youtube.com"]`,
	).Length()
	if count > 0 {
		return []audit.Finding{audit.Good(
			fmt.Sprintf("%d social media links found", count),
		)}, nil
	}
	return []audit.Finding{audit.Warn(
		"No social media links found",
		"Consider adding links to your social media profiles",
	)}, nil
}

// MicrodataRule detects schema.org microdata attributes.
type MicrodataRule struct {
	audit.BaseRule
}

// NewMicrodataRule creates a new microdata rule.
func NewMicrodataRule() *MicrodataRule {
	return &MicrodataRule{
		BaseRule: audit.NewBaseRule(
			"SEO064",
			"microdata",
			"Schema.org microdata attributes are a positive signal",
			audit.CategoryOffPage,
		),
	}
}

// Apply is a good-only signal.
func (r *MicrodataRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if exists(ctx.Page.Doc(), "[itemscope], [itemtype], [itemprop]") {
		return []audit.Finding{audit.Good("Schema.org microdata found")}, nil
	}
	return nil, nil
}

// NofollowBalanceRule checks the follow/nofollow mix on external links.
type NofollowBalanceRule struct {
	audit.BaseRule
}

// NewNofollowBalanceRule creates a new nofollow balance rule.
func NewNofollowBalanceRule() *NofollowBalanceRule {
	return &NofollowBalanceRule{
		BaseRule: audit.NewBaseRule(
			"SEO065",
			"nofollow-balance",
			"External links should mix follow and nofollow",
			audit.CategoryOffPage,
		),
	}
}

// Apply emits nothing when the page has no external links.
func (r *NofollowBalanceRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	host := ctx.Page.Hostname()
	external, nofollow := 0, 0

	ctx.Page.Doc().Find(`a[href^="http"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if containsHost(href, host) {
			return
		}
		external++
		rel, _ := sel.Attr("rel")
		if strings.Contains(rel, "nofollow") {
			nofollow++
		}
	})

	switch {
	case external == 0:
		return nil, nil
	case nofollow == external:
		return []audit.Finding{audit.Warn(
			"All external links are nofollow",
			"Consider making some external links dofollow if they add value",
		)}, nil
	case nofollow > 0:
		return []audit.Finding{audit.Good("Good mix of follow/nofollow external links")}, nil
	default:
		return []audit.Finding{audit.Warn(
			"No nofollow attributes on external links",
			`Consider adding rel="nofollow" to untrusted external links`,
		)}, nil
	}
}
