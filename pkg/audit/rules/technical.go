package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

// HTTPSRule checks the page is served over TLS.
type HTTPSRule struct {
	audit.BaseRule
}

// NewHTTPSRule creates a new HTTPS rule.
func NewHTTPSRule() *HTTPSRule {
	return &HTTPSRule{
		BaseRule: audit.NewBaseRule(
			"SEO020",
			"https",
			"Pages must be served over HTTPS",
			audit.CategoryTechnical,
		),
	}
}

func (r *HTTPSRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if ctx.Page.IsHTTPS() {
		return []audit.Finding{audit.Good("Site uses HTTPS")}, nil
	}
	return []audit.Finding{audit.Error(
		"Site not using HTTPS",
		"Implement SSL certificate for security and SEO benefits",
	)}, nil
}

// ViewportRule checks the mobile viewport meta tag.
type ViewportRule struct {
	audit.BaseRule
}

// NewViewportRule creates a new viewport rule.
func NewViewportRule() *ViewportRule {
	return &ViewportRule{
		BaseRule: audit.NewBaseRule(
			"SEO021",
			"viewport",
			"Pages should declare a width=device-width viewport",
			audit.CategoryTechnical,
		),
	}
}

func (r *ViewportRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	content, found := metaContent(ctx.Page.Doc(), `meta[name="viewport"]`)
	if found && strings.Contains(content, "width=device-width") {
		return []audit.Finding{audit.Good("Mobile viewport meta tag present")}, nil
	}
	return []audit.Finding{audit.Warn(
		"Mobile viewport meta tag missing or incorrect",
		`Add <meta name="viewport" content="width=device-width, initial-scale=1">`,
	)}, nil
}

// CanonicalRule checks for a canonical link element.
type CanonicalRule struct {
	audit.BaseRule
}

// NewCanonicalRule creates a new canonical URL rule.
func NewCanonicalRule() *CanonicalRule {
	return &CanonicalRule{
		BaseRule: audit.NewBaseRule(
			"SEO022",
			"canonical",
			"Pages should declare a canonical URL",
			audit.CategoryTechnical,
		),
	}
}

func (r *CanonicalRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if exists(ctx.Page.Doc(), `link[rel="canonical"]`) {
		return []audit.Finding{audit.Good("Canonical URL specified")}, nil
	}
	return []audit.Finding{audit.Warn(
		"No canonical URL specified",
		"Add a canonical link to prevent duplicate content issues",
	)}, nil
}

// PaginationRelRule detects rel next/prev pagination hints.
type PaginationRelRule struct {
	audit.BaseRule
}

// NewPaginationRelRule creates a new pagination rule.
func NewPaginationRelRule() *PaginationRelRule {
	return &PaginationRelRule{
		BaseRule: audit.NewBaseRule(
			"SEO023",
			"pagination-rel",
			"Paginated series should expose rel next/prev links",
			audit.CategoryTechnical,
		),
	}
}

// Apply is a good-only signal: unpaginated pages emit nothing.
func (r *PaginationRelRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if exists(ctx.Page.Doc(), `link[rel="next"], link[rel="prev"]`) {
		return []audit.Finding{audit.Good("Pagination rel next/prev present")}, nil
	}
	return nil, nil
}

// RobotsMetaRule checks the robots meta tag for noindex.
type RobotsMetaRule struct {
	audit.BaseRule
}

// NewRobotsMetaRule creates a new robots meta rule.
func NewRobotsMetaRule() *RobotsMetaRule {
	return &RobotsMetaRule{
		BaseRule: audit.NewBaseRule(
			"SEO024",
			"robots-meta",
			"A robots meta tag must not accidentally noindex the page",
			audit.CategoryTechnical,
		),
	}
}

// Apply stays silent when no robots meta tag exists; absence means indexable.
func (r *RobotsMetaRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	content, found := metaContent(ctx.Page.Doc(), `meta[name="robots"]`)
	if !found {
		return nil, nil
	}
	if strings.Contains(content, "noindex") {
		return []audit.Finding{audit.Warn(
			"Page set to noindex",
			"Remove noindex if you want this page to be indexed",
		)}, nil
	}
	return []audit.Finding{audit.Good("Robots meta tag configured properly")}, nil
}

// HTMLLangRule checks the html lang attribute.
type HTMLLangRule struct {
	audit.BaseRule
}

// NewHTMLLangRule creates a new language declaration rule.
func NewHTMLLangRule() *HTMLLangRule {
	return &HTMLLangRule{
		BaseRule: audit.NewBaseRule(
			"SEO025",
			"html-lang",
			"The html element should declare its language",
			audit.CategoryTechnical,
		),
	}
}

func (r *HTMLLangRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	lang, _ := ctx.Page.Doc().Find("html").First().Attr("lang")
	if lang != "" {
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Language declared (%s)", lang),
		)}, nil
	}
	return []audit.Finding{audit.Warn(
		"No language declaration found",
		`Add lang attribute to html tag (e.g., <html lang="en">)`,
	)}, nil
}

// HreflangRule detects hreflang alternates.
type HreflangRule struct {
	audit.BaseRule
}

// NewHreflangRule creates a new hreflang rule.
func NewHreflangRule() *HreflangRule {
	return &HreflangRule{
		BaseRule: audit.NewBaseRule(
			"SEO026",
			"hreflang",
			"Multilingual pages should declare hreflang alternates",
			audit.CategoryTechnical,
		),
	}
}

// Apply is a good-only signal: single-language pages emit nothing.
func (r *HreflangRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	count := ctx.Page.Doc().Find(`link[rel="alternate"][hreflang]`).Length()
	if count > 0 {
		return []audit.Finding{audit.Good(
			fmt.Sprintf("%d hreflang alternates found", count),
		)}, nil
	}
	return nil, nil
}

// FaviconRule checks for a favicon link.
type FaviconRule struct {
	audit.BaseRule
}

// NewFaviconRule creates a new favicon rule.
func NewFaviconRule() *FaviconRule {
	return &FaviconRule{
		BaseRule: audit.NewBaseRule(
			"SEO027",
			"favicon",
			"Pages should link a favicon",
			audit.CategoryTechnical,
		),
	}
}

func (r *FaviconRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if exists(ctx.Page.Doc(), `link[rel="icon"], link[rel="shortcut icon"]`) {
		return []audit.Finding{audit.Good("Favicon present")}, nil
	}
	return []audit.Finding{audit.Warn(
		"No favicon found",
		"Add a favicon for better user experience",
	)}, nil
}

// LoadTimeRule grades the navigation load time.
type LoadTimeRule struct {
	audit.BaseRule
}

// NewLoadTimeRule creates a new load time rule.
func NewLoadTimeRule() *LoadTimeRule {
	return &LoadTimeRule{
		BaseRule: audit.NewBaseRule(
			"SEO028",
			"load-time",
			"Pages should finish loading within three seconds",
			audit.CategoryTechnical,
		),
	}
}

// Apply reports nothing when timing was not measured. The reported value is
// rounded to whole seconds, matching the granularity of the thresholds.
func (r *LoadTimeRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	load := ctx.Page.Timing().LoadEventEnd
	if load <= 0 {
		return nil, nil
	}

	seconds := int(math.Round(load / 1000))
	switch {
	case load < 2000:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Excellent page load time (%ds)", seconds),
		)}, nil
	case load < 3000:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("Good page load time (%ds)", seconds),
		)}, nil
	case load < 5000:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("Moderate page load time (%ds)", seconds),
			"Optimize images and reduce HTTP requests to improve load time",
		)}, nil
	default:
		return []audit.Finding{audit.Error(
			fmt.Sprintf("Slow page load time (%ds)", seconds),
			"Significant performance optimization needed",
		)}, nil
	}
}

// MinifiedAssetsRule checks whether linked CSS and JS look minified.
type MinifiedAssetsRule struct {
	audit.BaseRule
}

// NewMinifiedAssetsRule creates a new asset minification rule.
func NewMinifiedAssetsRule() *MinifiedAssetsRule {
	return &MinifiedAssetsRule{
		BaseRule: audit.NewBaseRule(
			"SEO029",
			"minified-assets",
			"External stylesheets and scripts should be minified",
			audit.CategoryTechnical,
		),
	}
}

// Apply uses the .min. filename convention as the minification signal.
// Pages whose assets carry no such marker at all emit nothing, since the
// convention proves minification but its absence proves little.
func (r *MinifiedAssetsRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()

	countMin := func(sel *goquery.Selection, attr string) (minified, total int) {
		sel.Each(func(_ int, s *goquery.Selection) {
			val, ok := s.Attr(attr)
			if !ok {
				return
			}
			total++
			if strings.Contains(val, ".min.") {
				minified++
			}
		})
		return minified, total
	}

	var findings []audit.Finding

	minCSS, totalCSS := countMin(doc.Find(`link[rel="stylesheet"]`), "href")
	switch {
	case totalCSS > 0 && minCSS == totalCSS:
		findings = append(findings, audit.Good("All CSS files are minified"))
	case minCSS > 0:
		findings = append(findings, audit.Warn(
			"Some CSS files are not minified",
			"Minify all CSS files to improve load times",
		))
	}

	minJS, totalJS := countMin(doc.Find("script[src]"), "src")
	switch {
	case totalJS > 0 && minJS == totalJS:
		findings = append(findings, audit.Good("All JavaScript files are minified"))
	case minJS > 0:
		findings = append(findings, audit.Warn(
			"Some JavaScript files are not minified",
			"Minify all JavaScript files to improve load times",
		))
	}

	return findings, nil
}

// AMPRule detects a linked AMP variant.
type AMPRule struct {
	audit.BaseRule
}

// NewAMPRule creates a new AMP detection rule.
func NewAMPRule() *AMPRule {
	return &AMPRule{
		BaseRule: audit.NewBaseRule(
			"SEO030",
			"amp",
			"An amphtml link signals an AMP variant of the page",
			audit.CategoryTechnical,
		),
	}
}

// Apply is a good-only signal.
func (r *AMPRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if exists(ctx.Page.Doc(), `link[rel="amphtml"]`) {
		return []audit.Finding{audit.Good("AMP version linked")}, nil
	}
	return nil, nil
}
