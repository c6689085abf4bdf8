package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

// LCPRule grades the largest contentful paint.
type LCPRule struct {
	audit.BaseRule
}

// NewLCPRule creates a new LCP rule.
func NewLCPRule() *LCPRule {
	return &LCPRule{
		BaseRule: audit.NewBaseRule(
			"SEO080",
			"lcp",
			"Largest contentful paint should stay at or under 2.5 seconds",
			audit.CategoryUX,
		),
	}
}

// Apply warns when LCP was never observed; the metric requires a rendering
// collector.
func (r *LCPRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if !ctx.Vitals.LCPSeen {
		return []audit.Finding{audit.Warn(
			"LCP not available",
			"Run PageSpeed Insights for lab/field data",
		)}, nil
	}

	lcp := ctx.Vitals.LCP
	switch {
	case lcp <= 2500:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("LCP good (%.2fs)", lcp/1000),
		)}, nil
	case lcp <= 4000:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("LCP needs improvement (%.2fs)", lcp/1000),
			"Optimize images and critical rendering path",
		)}, nil
	default:
		return []audit.Finding{audit.Error(
			fmt.Sprintf("LCP poor (%.2fs)", lcp/1000),
			"Compress images, reduce render-blocking resources",
		)}, nil
	}
}

// CLSRule grades cumulative layout shift.
type CLSRule struct {
	audit.BaseRule
}

// NewCLSRule creates a new CLS rule.
func NewCLSRule() *CLSRule {
	return &CLSRule{
		BaseRule: audit.NewBaseRule(
			"SEO081",
			"cls",
			"Cumulative layout shift should stay at or under 0.1",
			audit.CategoryUX,
		),
	}
}

// Apply stays silent at zero; a zero score cannot be told apart from a page
// that never reported shifts.
func (r *CLSRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	cls := ctx.Vitals.CLS
	switch {
	case cls == 0:
		return nil, nil
	case cls <= 0.1:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("CLS good (%.3f)", cls),
		)}, nil
	case cls <= 0.25:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("CLS needs improvement (%.3f)", cls),
			"Set width/height on images; avoid layout shifts",
		)}, nil
	default:
		return []audit.Finding{audit.Error(
			fmt.Sprintf("CLS poor (%.3f)", cls),
			"Reserve space for media; avoid inserting above content",
		)}, nil
	}
}

// INPRule grades interaction-to-next-paint responsiveness.
type INPRule struct {
	audit.BaseRule
}

// NewINPRule creates a new INP rule.
func NewINPRule() *INPRule {
	return &INPRule{
		BaseRule: audit.NewBaseRule(
			"SEO082",
			"inp",
			"Interaction to next paint should stay under 200 milliseconds",
			audit.CategoryUX,
		),
	}
}

func (r *INPRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if !ctx.Vitals.INPSeen {
		return []audit.Finding{audit.Warn(
			"INP not measured",
			"Requires user interaction or lab testing",
		)}, nil
	}

	inp := math.Round(ctx.Vitals.INP)
	switch {
	case inp < 200:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("INP good (%.0f ms)", inp),
		)}, nil
	case inp < 500:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("INP moderate (%.0f ms)", inp),
			"Reduce JS main-thread work and long tasks",
		)}, nil
	default:
		return []audit.Finding{audit.Error(
			fmt.Sprintf("INP poor (%.0f ms)", inp),
			"Defer non-critical JS and optimize interactions",
		)}, nil
	}
}

// NavigationRule detects navigation landmarks and breadcrumbs.
type NavigationRule struct {
	audit.BaseRule
}

// NewNavigationRule creates a new navigation rule.
func NewNavigationRule() *NavigationRule {
	return &NavigationRule{
		BaseRule: audit.NewBaseRule(
			"SEO083",
			"navigation",
			"Pages should expose a nav landmark and breadcrumbs",
			audit.CategoryUX,
		),
	}
}

// Apply is a good-only signal for both landmarks.
func (r *NavigationRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()

	var findings []audit.Finding
	if exists(doc, "nav") {
		findings = append(findings, audit.Good("Navigation landmark present"))
	}
	if hasBreadcrumbs(doc) {
		findings = append(findings, audit.Good("Breadcrumbs detected"))
	}
	return findings, nil
}

// hasBreadcrumbs matches either BreadcrumbList schema hints or the common
// breadcrumb UI conventions. The aria-label match is case-insensitive.
func hasBreadcrumbs(doc *goquery.Document) bool {
	if exists(doc, `[itemtype*="BreadcrumbList"], script[type="application/ld+json"]`) {
		return true
	}
	if exists(doc, ".breadcrumb, ol.breadcrumb") {
		return true
	}
	found := false
	doc.Find("nav[aria-label]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		label, _ := sel.Attr("aria-label")
		if strings.Contains(strings.ToLower(label), "breadcrumb") {
			found = true
			return false
		}
		return true
	})
	return found
}

// A11yBasicsRule checks alt coverage and form label coverage.
type A11yBasicsRule struct {
	audit.BaseRule
}

// NewA11yBasicsRule creates a new accessibility basics rule.
func NewA11yBasicsRule() *A11yBasicsRule {
	return &A11yBasicsRule{
		BaseRule: audit.NewBaseRule(
			"SEO084",
			"a11y-basics",
			"Images need alt text; form inputs need associated labels",
			audit.CategoryUX,
		),
	}
}

// Apply only warns; a fully accessible page emits nothing here since the
// positive alt signal lives in the on-page category.
func (r *A11yBasicsRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()

	var findings []audit.Finding

	noAlt := 0
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		alt, _ := sel.Attr("alt")
		if strings.TrimSpace(alt) == "" {
			noAlt++
		}
	})
	if noAlt > 0 {
		findings = append(findings, audit.Warn(
			fmt.Sprintf("%d images missing alt", noAlt),
			"Add descriptive alt attributes",
		))
	}

	labels := doc.Find("label[for]").Length()
	inputs := doc.Find("input:not([type=hidden]):not([aria-hidden])").Length()
	if inputs > 0 && float64(labels) < float64(inputs)*0.5 {
		findings = append(findings, audit.Warn(
			"Many inputs lack associated labels",
			"Link labels to inputs via for/id or use aria-label",
		))
	}

	return findings, nil
}
