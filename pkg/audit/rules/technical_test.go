package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/page"
)

func TestHTTPSRule(t *testing.T) {
	rule := NewHTTPSRule()

	t.Run("https is good", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityGood, findings[0].Severity)
		assert.Equal(t, "Site uses HTTPS", findings[0].Message)
	})

	t.Run("http is an error", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "http://example.com/", "<html></html>"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityError, findings[0].Severity)
		assert.Equal(t, "Site not using HTTPS", findings[0].Message)
	})
}

func TestViewportRule(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantSeverity audit.Severity
	}{
		{
			name:         "device-width viewport",
			html:         `<html><head><meta name="viewport" content="width=device-width, initial-scale=1"></head></html>`,
			wantSeverity: audit.SeverityGood,
		},
		{
			name:         "fixed-width viewport",
			html:         `<html><head><meta name="viewport" content="width=1024"></head></html>`,
			wantSeverity: audit.SeverityWarning,
		},
		{
			name:         "missing viewport",
			html:         "<html><head></head></html>",
			wantSeverity: audit.SeverityWarning,
		},
	}

	rule := NewViewportRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := rule.Apply(newTestContext(t, "https://example.com/", tt.html))
			require.NoError(t, err)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
		})
	}
}

func TestCanonicalRule(t *testing.T) {
	rule := NewCanonicalRule()

	findings, err := rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head><link rel="canonical" href="https://example.com/"></head></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "Canonical URL specified", findings[0].Message)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
}

func TestPaginationRelRule(t *testing.T) {
	rule := NewPaginationRelRule()

	findings, err := rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head><link rel="next" href="/page/2"></head></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "Pagination rel next/prev present", findings[0].Message)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestRobotsMetaRule(t *testing.T) {
	rule := NewRobotsMetaRule()

	t.Run("absent tag is silent", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("noindex warns", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><head><meta name="robots" content="noindex, nofollow"></head></html>`))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "Page set to noindex", findings[0].Message)
	})

	t.Run("index follow is good", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			`<html><head><meta name="robots" content="index, follow"></head></html>`))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityGood, findings[0].Severity)
	})
}

func TestHTMLLangRule(t *testing.T) {
	rule := NewHTMLLangRule()

	findings, err := rule.Apply(newTestContext(t, "https://example.com/",
		`<html lang="en-GB"><body></body></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "Language declared (en-GB)", findings[0].Message)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/", "<html><body></body></html>"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
}

func TestHreflangRule(t *testing.T) {
	rule := NewHreflangRule()

	findings, err := rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head>
			<link rel="alternate" hreflang="en" href="https://example.com/en">
			<link rel="alternate" hreflang="de" href="https://example.com/de">
		</head></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "2 hreflang alternates found", findings[0].Message)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head><link rel="alternate" type="application/rss+xml" href="/feed"></head></html>`))
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestFaviconRule(t *testing.T) {
	rule := NewFaviconRule()

	findings, err := rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head><link rel="icon" href="/favicon.ico"></head></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, audit.SeverityGood, findings[0].Severity)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head><link rel="shortcut icon" href="/favicon.ico"></head></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, audit.SeverityGood, findings[0].Severity)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "No favicon found", findings[0].Message)
}

func TestLoadTimeRule(t *testing.T) {
	tests := []struct {
		name         string
		loadMs       float64
		wantSeverity audit.Severity
		wantMsg      string
	}{
		{"unmeasured is silent", 0, "", ""},
		{"excellent", 1500, audit.SeverityGood, "Excellent page load time (2s)"},
		{"good", 2400, audit.SeverityGood, "Good page load time (2s)"},
		{"moderate", 4000, audit.SeverityWarning, "Moderate page load time (4s)"},
		{"slow", 6000, audit.SeverityError, "Slow page load time (6s)"},
	}

	rule := NewLoadTimeRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContextTiming(t, "https://example.com/", "<html></html>",
				page.Timing{LoadEventEnd: tt.loadMs})
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

func TestMinifiedAssetsRule(t *testing.T) {
	rule := NewMinifiedAssetsRule()

	t.Run("all assets minified", func(t *testing.T) {
		html := `<html><head>
			<link rel="stylesheet" href="/app.min.css">
			<script src="/app.min.js"></script>
		</head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"All CSS files are minified",
			"All JavaScript files are minified",
		}, messages(findings))
	})

	t.Run("partial minification warns", func(t *testing.T) {
		html := `<html><head>
			<link rel="stylesheet" href="/app.min.css">
			<link rel="stylesheet" href="/theme.css">
		</head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "Some CSS files are not minified", findings[0].Message)
	})

	t.Run("no minification markers is silent", func(t *testing.T) {
		html := `<html><head>
			<link rel="stylesheet" href="/theme.css">
			<script src="/app.js"></script>
		</head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("inline scripts are ignored", func(t *testing.T) {
		html := `<html><head><script>console.log(1)</script></head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestAMPRule(t *testing.T) {
	rule := NewAMPRule()

	findings, err := rule.Apply(newTestContext(t, "https://example.com/",
		`<html><head><link rel="amphtml" href="https://example.com/amp"></head></html>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "AMP version linked", findings[0].Message)

	findings, err = rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
	require.NoError(t, err)
	assert.Empty(t, findings)
}
