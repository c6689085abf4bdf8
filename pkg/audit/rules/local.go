package rules

import (
	"regexp"

	"github.com/yaklabco/seolint/pkg/audit"
)

// Case-sensitive on purpose: schema.org type names are capitalized and the
// match should not fire on words like "organization" inside free text types.
var localBusinessTypes = regexp.MustCompile(`LocalBusiness|Organization|Restaurant|Store|Medical`)

// LocalSchemaRule checks for LocalBusiness-family structured data.
type LocalSchemaRule struct {
	audit.BaseRule
}

// NewLocalSchemaRule creates a new local business schema rule.
func NewLocalSchemaRule() *LocalSchemaRule {
	return &LocalSchemaRule{
		BaseRule: audit.NewBaseRule(
			"SEO100",
			"local-schema",
			"Local pages should declare LocalBusiness or Organization schema",
			audit.CategoryLocal,
		),
	}
}

// Apply checks the declared schema types, then adds good-only signals for
// address, phone, and rating metadata found anywhere in the JSON-LD.
func (r *LocalSchemaRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	ld := ctx.Page.StructuredData()

	var findings []audit.Finding
	matched := false
	for _, t := range ld.Types {
		if localBusinessTypes.MatchString(t) {
			matched = true
			break
		}
	}
	if matched {
		findings = append(findings, audit.Good("LocalBusiness/Organization schema present"))
	} else {
		findings = append(findings, audit.Warn(
			"No LocalBusiness schema",
			"Add LocalBusiness schema with address and phone",
		))
	}

	if ld.HasAddress {
		findings = append(findings, audit.Good("Business address structured data found"))
	}
	if ld.Telephone != "" {
		findings = append(findings, audit.Good("Business phone in structured data"))
	}
	if ld.HasRating {
		findings = append(findings, audit.Good("AggregateRating schema found (reviews)"))
	}
	return findings, nil
}

// NAPSignalsRule detects name-address-phone presence heuristics.
type NAPSignalsRule struct {
	audit.BaseRule
}

// NewNAPSignalsRule creates a new NAP signals rule.
func NewNAPSignalsRule() *NAPSignalsRule {
	return &NAPSignalsRule{
		BaseRule: audit.NewBaseRule(
			"SEO101",
			"nap-signals",
			"Clickable phone numbers and map embeds signal a local presence",
			audit.CategoryLocal,
		),
	}
}

// Apply is a good-only signal for each heuristic.
func (r *NAPSignalsRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	doc := ctx.Page.Doc()

	var findings []audit.Finding
	if exists(doc, `a[href^="tel:"]`) {
		findings = append(findings, audit.Good("Clickable phone number (tel:) found"))
	}
	if exists(doc, `iframe[src*="google.com/maps"], iframe[src*="maps.apple.com"]`) {
		findings = append(findings, audit.Good("Map embed detected"))
	}
	return findings, nil
}
