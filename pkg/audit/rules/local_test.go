package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
)

func TestLocalSchemaRule(t *testing.T) {
	rule := NewLocalSchemaRule()

	t.Run("full local business schema", func(t *testing.T) {
		html := `<html><head><script type="application/ld+json">{
			"@context": "https://schema.org",
			"@type": "Restaurant",
			"telephone": "+44 20 7946 0000",
			"address": {"@type": "PostalAddress", "streetAddress": "1 High St"},
			"aggregateRating": {"@type": "AggregateRating", "ratingValue": "4.5"}
		}</script></head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"LocalBusiness/Organization schema present",
			"Business address structured data found",
			"Business phone in structured data",
			"AggregateRating schema found (reviews)",
		}, messages(findings))
	})

	t.Run("no schema warns", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "No LocalBusiness schema", findings[0].Message)
	})

	t.Run("type match is case-sensitive", func(t *testing.T) {
		html := `<html><head><script type="application/ld+json">{"@type":"organization"}</script></head></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "No LocalBusiness schema", findings[0].Message)
	})
}

func TestNAPSignalsRule(t *testing.T) {
	rule := NewNAPSignalsRule()

	t.Run("phone and map", func(t *testing.T) {
		html := `<html><body>
			<a href="tel:+442079460000">Call us</a>
			<iframe src="https://www.google.com/maps/embed?pb=x"></iframe>
		</body></html>`
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", html))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Clickable phone number (tel:) found",
			"Map embed detected",
		}, messages(findings))
	})

	t.Run("nothing found is silent", func(t *testing.T) {
		findings, err := rule.Apply(newTestContext(t, "https://example.com/", "<html></html>"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}
