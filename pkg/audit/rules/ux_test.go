package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/vitals"
)

func TestLCPRule(t *testing.T) {
	tests := []struct {
		name         string
		vit          vitals.Snapshot
		wantSeverity audit.Severity
		wantMsg      string
	}{
		{
			name:         "unobserved warns",
			vit:          vitals.Snapshot{},
			wantSeverity: audit.SeverityWarning,
			wantMsg:      "LCP not available",
		},
		{
			name:         "good at threshold",
			vit:          vitals.Snapshot{LCP: 2500, LCPSeen: true},
			wantSeverity: audit.SeverityGood,
			wantMsg:      "LCP good (2.50s)",
		},
		{
			name:         "needs improvement",
			vit:          vitals.Snapshot{LCP: 3200, LCPSeen: true},
			wantSeverity: audit.SeverityWarning,
			wantMsg:      "LCP needs improvement (3.20s)",
		},
		{
			name:         "poor",
			vit:          vitals.Snapshot{LCP: 4100, LCPSeen: true},
			wantSeverity: audit.SeverityError,
			wantMsg:      "LCP poor (4.10s)",
		},
	}

	rule := NewLCPRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContextVitals(t, "https://example.com/", "<html></html>", tt.vit)
			findings, err := rule.Apply(ctx)
			require.NoError(t, err)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
			assert.Equal(t, tt.wantMsg, findings[0].Message)
		})
	}
}

func TestCLSRule(t *testing.T) {
	tests := []struct {
		name         string
		cls          float64
		wantSeverity audit.Severity
		wantMsg      string
	}{
		{"zero is silent", 0, "", ""},
		{"good", 0.05, audit.SeverityGood, "CLS good (0.050)"},
		{"boundary good", 0.1, audit.SeverityGood, "CLS good (0.100)"},
		{"needs improvement", 0.2, audit.SeverityWarning, "CLS needs improvement (0.200)"},
		{"poor", 0.3, audit.SeverityError, "CLS poor (0.300)"},
	}

	rule := NewCLSRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContextVitals(t, "https://example.com/", "<html></html>",
				vitals.Snapshot{CLS: tt.cls})
			findings, err := rule.Apply(ctx)
			require.NoError(t, err)
			if tt.wantMsg == "" {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
			assert.Equal(t, tt.wantMsg, findings[0].Message)
		})
	}
}

func TestINPRule(t *testing.T) {
	tests := []struct {
		name         string
		vit          vitals.Snapshot
		wantSeverity audit.Severity
		wantMsg      string
	}{
		{
			name:         "unmeasured warns",
			vit:          vitals.Snapshot{},
			wantSeverity: audit.SeverityWarning,
			wantMsg:      "INP not measured",
		},
		{
			name:         "good",
			vit:          vitals.Snapshot{INP: 120, INPSeen: true},
			wantSeverity: audit.SeverityGood,
			wantMsg:      "INP good (120 ms)",
		},
		{
			name:         "moderate",
			vit:          vitals.Snapshot{INP: 350, INPSeen: true},
			wantSeverity: audit.SeverityWarning,
			wantMsg:      "INP moderate (350 ms)",
		},
		{
			name:         "poor",
			vit:          vitals.Snapshot{INP: 600, INPSeen: true},
			wantSeverity: audit.SeverityError,
			wantMsg:      "INP poor (600 ms)",
		},
	}

	rule := NewINPRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContextVitals(t, "https://example.com/", "<html></html>", tt.vit)
			findings, err := rule.Apply(ctx)
			require.NoError(t, err)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
			assert.Equal(t, tt.wantMsg, findings[0].Message)
		})
	}
}

func TestNavigationRule(t *testing.T) {
	rule := NewNavigationRule()

	t.Run("nav landmark", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			"<html><body><nav><a href='/'>home</a></nav></body></html>"))
		require.NoError(t, err)
		assert.Contains(t, messages(findings), "Navigation landmark present")
	})

	t.Run("breadcrumb class", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><body><ol class="breadcrumb"><li>Home</li></ol></body></html>`))
		require.NoError(t, err)
		assert.Contains(t, messages(findings), "Breadcrumbs detected")
	})

	t.Run("aria label match is case-insensitive", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><body><nav aria-label="Breadcrumb trail"></nav></body></html>`))
		require.NoError(t, err)
		assert.Contains(t, messages(findings), "Breadcrumbs detected")
	})

	t.Run("nothing found is silent", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			"<html><body><p>text</p></body></html>"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestA11yBasicsRule(t *testing.T) {
	rule := NewA11yBasicsRule()

	t.Run("missing alt warns", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><body><img src="a.png"><img src="b.png" alt="b"></body></html>`))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "1 images missing alt", findings[0].Message)
	})

	t.Run("unlabelled inputs warn", func(t *testing.T) {
		html := `<html><body><form>
			<input type="text" name="a">
			<input type="text" name="b">
			<input type="hidden" name="token">
		</form></body></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Many inputs lack associated labels", findings[0].Message)
	})

	t.Run("labelled form is silent", func(t *testing.T) {
		html := `<html><body><form>
			<label for="a">A</label><input type="text" id="a">
			<label for="b">B</label><input type="text" id="b">
		</form></body></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}
