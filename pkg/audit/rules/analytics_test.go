package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
)

func TestAnalyticsToolsRule(t *testing.T) {
	rule := NewAnalyticsToolsRule()

	tests := []struct {
		name    string
		html    string
		wantMsg string
	}{
		{
			name:    "ga4 also matches gtm host",
			html:    `<html><head><script src="https://www.googletagmanager.com/gtag/js?id=G-X"></script></head></html>`,
			wantMsg: "Analytics detected (GA4, GTM)",
		},
		{
			name:    "gtm only",
			html:    `<html><head><script src="https://www.googletagmanager.com/gtm.js?id=GTM-X"></script></head></html>`,
			wantMsg: "Analytics detected (GTM)",
		},
		{
			name:    "plausible",
			html:    `<html><head><script src="https://plausible.io/js/script.js"></script></head></html>`,
			wantMsg: "Analytics detected (Plausible)",
		},
		{
			name:    "matomo",
			html:    `<html><head><script src="https://stats.example.net/matomo.js"></script></head></html>`,
			wantMsg: "Analytics detected (Matomo)",
		},
		{
			name:    "clarity",
			html:    `<html><head><script src="https://www.clarity.ms/tag/abc"></script></head></html>`,
			wantMsg: "Analytics detected (Clarity)",
		},
		{
			name:    "universal analytics",
			html:    `<html><head><script src="https://www.google-analytics.com/analytics.js"></script></head></html>`,
			wantMsg: "Analytics detected (UA)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := rule.Apply(newTestContext(t, "https://example.com/", tt.html))
			require.NoError(t, err)
			require.Len(t, findings, 1)
			assert.Equal(t, audit.SeverityGood, findings[0].Severity)
			assert.Equal(t, tt.wantMsg, findings[0].Message)
		})
	}

	t.Run("no analytics warns", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><head><script src="/app.js"></script></head></html>`))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "No analytics scripts detected", findings[0].Message)
	})

	t.Run("inline snippets do not count", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><head><script>window.dataLayer = window.dataLayer || []</script></head></html>`))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
	})
}
