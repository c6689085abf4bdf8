package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
	_ "github.com/yaklabco/seolint/pkg/audit/rules"
	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/page"
	"github.com/yaklabco/seolint/pkg/vitals"
)

// richPageHTML gives nearly every rule in the catalog something to say.
const richPageHTML = `<html lang="en"><head>
	<title>A reasonably sized page title for testing xx</title>
	<meta name="description" content="A meta description that is long enough to pass the length check, padded out with more words until it comfortably clears one hundred twenty characters.">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<meta property="og:title" content="t"><meta property="og:description" content="d">
	<meta property="og:image" content="i"><meta property="og:url" content="u">
	<meta property="article:published_time" content="2026-01-30T10:00:00Z">
	<link rel="canonical" href="https://example.com/">
	<link rel="icon" href="/favicon.ico">
	<script src="https://www.googletagmanager.com/gtag/js?id=G-1"></script>
	<script type="application/ld+json">{"@context":"https://schema.org","@type":"LocalBusiness","name":"Acme","telephone":"+1-555-0100","address":{"@type":"PostalAddress","streetAddress":"1 Main St"},"aggregateRating":{"@type":"AggregateRating","ratingValue":"4.5"}}</script>
	</head><body>
	<nav><a href="/">Home</a></nav>
	<h1>Heading</h1><h2>Sub</h2>
	<main><img src="/hero.webp" alt="hero" width="800" height="400" loading="lazy"></main>
	<p>Some body text with enough words to register. More words follow here.</p>
	<a href="/about">internal</a>
	<a href="https://twitter.com/acme" rel="nofollow">social</a>
	<a href="https://other.example.net">external</a>
	<a href="tel:+15550100">call</a>
	</body></html>`

// Two passes over unchanged inputs must produce identical reports. Rules may
// read only the snapshot, the vitals value, and the injected timestamp, so
// nothing in a pass is allowed to vary between runs.
func TestAnalyzeIsDeterministic(t *testing.T) {
	snap, err := page.NewFromHTML("https://example.com/", richPageHTML, page.Timing{
		ResponseStart: 150,
		LoadEventEnd:  1800,
	})
	require.NoError(t, err)

	vit := vitals.Snapshot{LCP: 1900, LCPSeen: true, CLS: 0.04, INP: 120, INPSeen: true}

	settings := config.Default()
	settings.Categories.Local = true

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := audit.NewEngine(audit.DefaultRegistry)

	first, err := engine.Analyze(context.Background(), snap, vit, settings, now)
	require.NoError(t, err)
	second, err := engine.Analyze(context.Background(), snap, vit, settings, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	// Sanity: the fixture exercised every enabled category.
	for _, cat := range audit.AllCategories {
		require.Contains(t, first, cat)
	}
}
