package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/page"
	"github.com/yaklabco/seolint/pkg/vitals"
)

// Engine runs the registered rules against a page snapshot.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates an Engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Analyze evaluates every enabled category against the snapshot and vitals
// state, producing one report. The pass runs synchronously to completion.
//
// Fault isolation: a rule that returns an error or panics contributes exactly
// one synthetic error finding to its category and the pass continues. Only
// context cancellation aborts the pass early.
func (e *Engine) Analyze(
	ctx context.Context,
	snap *page.Snapshot,
	vit vitals.Snapshot,
	settings *config.Settings,
	now time.Time,
) (Report, error) {
	report := make(Report)
	ruleCtx := NewRuleContext(ctx, snap, vit, now)

	for _, cat := range AllCategories {
		if !cat.Enabled(settings.Categories) {
			continue
		}

		select {
		case <-ctx.Done():
			return report, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}

		result := NewCategoryResult()
		for _, rule := range e.Registry.CategoryRules(cat) {
			for _, f := range applyRule(rule, ruleCtx) {
				result.Add(f)
			}
		}
		report[cat] = result
	}

	return report, nil
}

// applyRule runs one rule, converting an error return or panic into a single
// synthetic error finding.
func applyRule(rule Rule, ctx *RuleContext) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []Finding{internalFault(rule)}
		}
	}()

	findings, err := rule.Apply(ctx)
	if err != nil {
		return []Finding{internalFault(rule)}
	}
	return findings
}

func internalFault(rule Rule) Finding {
	return Error(
		fmt.Sprintf("Internal check failure (%s)", rule.ID()),
		"Re-run the analysis; report this if it persists",
	)
}
