package rules

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

// Detection order fixes the order tools appear in the finding message.
var analyticsProviders = []struct {
	label string
	match func(src string) bool
}{
	{"GA4", func(s string) bool { return strings.Contains(s, "www.googletagmanager.com/gtag/js") }},
	{"GTM", func(s string) bool { return strings.Contains(s, "www.googletagmanager.com") }},
	{"Plausible", func(s string) bool { return strings.Contains(s, "plausible.io/js") }},
	{"Matomo", func(s string) bool { return strings.Contains(s, "matomo") || strings.Contains(s, "piwik") }},
	{"Clarity", func(s string) bool { return strings.Contains(s, "clarity.ms") }},
	{"UA", func(s string) bool { return strings.Contains(s, "analytics.js") }},
}

// AnalyticsToolsRule detects installed analytics scripts.
type AnalyticsToolsRule struct {
	audit.BaseRule
}

// NewAnalyticsToolsRule creates a new analytics detection rule.
func NewAnalyticsToolsRule() *AnalyticsToolsRule {
	return &AnalyticsToolsRule{
		BaseRule: audit.NewBaseRule(
			"SEO140",
			"analytics-tools",
			"Pages should load at least one analytics tool",
			audit.CategoryAnalytics,
		),
	}
}

// Apply inspects script src attributes only; inline snippets do not count.
// GA4 pages also match the broader GTM pattern, so both labels appear.
func (r *AnalyticsToolsRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	var srcs []string
	ctx.Page.Doc().Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			srcs = append(srcs, src)
		}
	})

	var tools []string
	for _, p := range analyticsProviders {
		for _, src := range srcs {
			if p.match(src) {
				tools = append(tools, p.label)
				break
			}
		}
	}

	if len(tools) == 0 {
		return []audit.Finding{audit.Warn(
			"No analytics scripts detected",
			"Install GA4, Plausible, or Matomo to track performance",
		)}, nil
	}
	return []audit.Finding{audit.Good(
		fmt.Sprintf("Analytics detected (%s)", strings.Join(tools, ", ")),
	)}, nil
}
