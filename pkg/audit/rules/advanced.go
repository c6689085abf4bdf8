package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/seolint/pkg/audit"
)

var (
	faqSchema   = regexp.MustCompile(`(?i)FAQPage`)
	howToSchema = regexp.MustCompile(`(?i)HowTo`)
	videoSchema = regexp.MustCompile(`(?i)VideoObject`)
)

// SchemaCoverageRule summarizes declared schema types and flags rich-result
// opportunities.
type SchemaCoverageRule struct {
	audit.BaseRule
}

// NewSchemaCoverageRule creates a new schema coverage rule.
func NewSchemaCoverageRule() *SchemaCoverageRule {
	return &SchemaCoverageRule{
		BaseRule: audit.NewBaseRule(
			"SEO160",
			"schema-coverage",
			"Pages benefit from FAQ, HowTo, and VideoObject schema",
			audit.CategoryAdvanced,
		),
	}
}

// Apply lists up to six distinct types in first-seen order, then adds one
// good finding per rich-result type present.
func (r *SchemaCoverageRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	types := ctx.Page.StructuredData().Types
	if len(types) == 0 {
		return []audit.Finding{audit.Warn(
			"No advanced schema types detected",
			"Consider adding FAQ, HowTo, or VideoObject where relevant",
		)}, nil
	}

	seen := make(map[string]struct{}, len(types))
	var distinct []string
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		distinct = append(distinct, t)
	}
	if len(distinct) > 6 {
		distinct = distinct[:6]
	}

	findings := []audit.Finding{audit.Good(
		fmt.Sprintf("Schema types: %s", strings.Join(distinct, ", ")),
	)}

	matchAny := func(re *regexp.Regexp) bool {
		for _, t := range types {
			if re.MatchString(t) {
				return true
			}
		}
		return false
	}
	if matchAny(faqSchema) {
		findings = append(findings, audit.Good("FAQ schema found"))
	}
	if matchAny(howToSchema) {
		findings = append(findings, audit.Good("HowTo schema found"))
	}
	if matchAny(videoSchema) {
		findings = append(findings, audit.Good("VideoObject schema found"))
	}
	return findings, nil
}

// AuthorAttributionRule checks for author signals.
type AuthorAttributionRule struct {
	audit.BaseRule
}

// NewAuthorAttributionRule creates a new author attribution rule.
func NewAuthorAttributionRule() *AuthorAttributionRule {
	return &AuthorAttributionRule{
		BaseRule: audit.NewBaseRule(
			"SEO161",
			"author-attribution",
			"Content should carry clear author attribution",
			audit.CategoryAdvanced,
		),
	}
}

func (r *AuthorAttributionRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()
	if exists(doc, `meta[name="author"], meta[property="article:author"]`) ||
		exists(doc, `[rel="author"], .author, .byline`) {
		return []audit.Finding{audit.Good("Author attribution present")}, nil
	}
	return []audit.Finding{audit.Warn(
		"No clear author attribution",
		"Add author bio and expertise signals (E-E-A-T)",
	)}, nil
}
