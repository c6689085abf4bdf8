package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
)

func wordsOfLength(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestContentLengthRule(t *testing.T) {
	tests := []struct {
		name         string
		words        int
		wantSeverity audit.Severity
		wantContains string
	}{
		{"thin content", 100, audit.SeverityWarning, "Low content length (100 words)"},
		{"boundary 300 is good", 300, audit.SeverityGood, "Good content length (300 words)"},
		{"comprehensive", 2001, audit.SeverityGood, "Comprehensive content (2001 words)"},
	}

	rule := NewContentLengthRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := "<html><body><p>" + wordsOfLength(tt.words) + "</p></body></html>"
			findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
			require.NoError(t, err)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
			assert.Equal(t, tt.wantContains, findings[0].Message)
		})
	}
}

func TestReadabilityRule(t *testing.T) {
	rule := NewReadabilityRule()

	t.Run("long sentences warn", func(t *testing.T) {
		html := "<html><body><p>" + wordsOfLength(30) + ".</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Long sentences detected", findings[0].Message)
	})

	t.Run("choppy sentences warn", func(t *testing.T) {
		html := "<html><body><p>Short one. Another here. And more. Again now.</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Very short sentences detected", findings[0].Message)
	})

	t.Run("balanced sentences are good", func(t *testing.T) {
		sentence := wordsOfLength(15) + "."
		html := "<html><body><p>" + strings.Repeat(sentence+" ", 3) + "</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Good sentence length for readability", findings[0].Message)
	})

	t.Run("no sentences is silent", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/",
			"<html><body></body></html>"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestTextHTMLRatioRule(t *testing.T) {
	rule := NewTextHTMLRatioRule()

	t.Run("text heavy page is good", func(t *testing.T) {
		html := "<html><body><p>" + wordsOfLength(500) + "</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityGood, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "Good text-to-HTML ratio")
	})

	t.Run("markup heavy page warns", func(t *testing.T) {
		html := "<html><body>" + strings.Repeat("<div class=\"wrapper\"><span></span></div>", 50) +
			"<p>tiny</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "Low text-to-HTML ratio")
	})
}

func TestDuplicateContentRule(t *testing.T) {
	rule := NewDuplicateContentRule()

	long := "This paragraph is certainly longer than fifty characters in total length."

	t.Run("repeated paragraph warns", func(t *testing.T) {
		html := "<html><body><p>" + long + "</p><p>" + long + "</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Potential duplicate content detected", findings[0].Message)
	})

	t.Run("unique paragraphs are good", func(t *testing.T) {
		html := "<html><body><p>" + long + "</p><p>" + long + " But this one differs.</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "No duplicate content detected", findings[0].Message)
	})

	t.Run("short paragraphs are silent", func(t *testing.T) {
		html := "<html><body><p>short</p><p>short</p></body></html>"
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestContentImagesRule(t *testing.T) {
	rule := NewContentImagesRule()

	t.Run("images inside article", func(t *testing.T) {
		html := `<html><body><article><img src="a.png"><img src="b.png"></article></body></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "2 images found in content", findings[0].Message)
	})

	t.Run("images outside content regions warn", func(t *testing.T) {
		html := `<html><body><header><img src="logo.png"></header></body></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
	})
}

func TestFreshnessRule(t *testing.T) {
	rule := NewFreshnessRule()

	t.Run("recent meta date is good", func(t *testing.T) {
		html := `<html><head><meta property="article:published_time" content="2026-01-30T10:00:00Z"></head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Content recently published/updated (30 days ago)", findings[0].Message)
	})

	t.Run("old date warns", func(t *testing.T) {
		html := `<html><head><meta name="date" content="2020-06-01"></head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "Content may be outdated", findings[0].Message)
	})

	t.Run("published_time beats name=date regardless of document order", func(t *testing.T) {
		html := `<html><head>
			<meta name="date" content="2020-06-01">
			<meta property="article:published_time" content="2026-01-30T10:00:00Z">
		</head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityGood, findings[0].Severity)
	})

	t.Run("json-ld date overrides meta", func(t *testing.T) {
		html := `<html><head>
			<meta name="date" content="2020-06-01">
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","datePublished":"2026-02-01"}</script>
		</head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityGood, findings[0].Severity)
	})

	t.Run("no date is silent", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("unparseable date is silent", func(t *testing.T) {
		html := `<html><head><meta name="date" content="sometime last year"></head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}
