package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/page"
	"github.com/yaklabco/seolint/pkg/vitals"
)

// passTime anchors time-based rules in tests.
var passTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestContext(t *testing.T, rawURL, html string) *audit.RuleContext {
	t.Helper()
	snap, err := page.NewFromHTML(rawURL, html, page.Timing{})
	require.NoError(t, err)
	return audit.NewRuleContext(context.Background(), snap, vitals.Snapshot{}, passTime)
}

func newTestContextVitals(t *testing.T, rawURL, html string, vit vitals.Snapshot) *audit.RuleContext {
	t.Helper()
	snap, err := page.NewFromHTML(rawURL, html, page.Timing{})
	require.NoError(t, err)
	return audit.NewRuleContext(context.Background(), snap, vit, passTime)
}

func newTestContextTiming(t *testing.T, rawURL, html string, timing page.Timing) *audit.RuleContext {
	t.Helper()
	snap, err := page.NewFromHTML(rawURL, html, timing)
	require.NoError(t, err)
	return audit.NewRuleContext(context.Background(), snap, vitals.Snapshot{}, passTime)
}

func messages(findings []audit.Finding) []string {
	msgs := make([]string, 0, len(findings))
	for _, f := range findings {
		msgs = append(msgs, f.Message)
	}
	return msgs
}
