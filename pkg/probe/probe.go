// Package probe runs best-effort background checks against the audited site:
// robots.txt, sitemap discovery, backlink estimates, PageSpeed Insights, and
// a Google Places listing lookup. Probe results annotate a report; they never
// feed the rule engine or the scores, and a failing probe never fails the
// audit.
package probe

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/seolint/internal/logging"
	"github.com/yaklabco/seolint/pkg/config"
)

// Results aggregates the probe outcomes for one target. A nil field means the
// probe did not run or failed.
type Results struct {
	Robots    *RobotsResult    `json:"robots,omitempty"`
	Sitemap   *SitemapResult   `json:"sitemap,omitempty"`
	Backlinks *BacklinkResult  `json:"backlinks,omitempty"`
	PageSpeed *PageSpeedResult `json:"pagespeed,omitempty"`
	Listing   *ListingResult   `json:"listing,omitempty"`
}

// Prober runs the probe set with a shared HTTP client.
type Prober struct {
	client *http.Client
	logger *log.Logger
}

// New creates a Prober. A nil logger falls back to the package default.
func New(timeout time.Duration, logger *log.Logger) *Prober {
	if logger == nil {
		logger = logging.Default()
	}
	return &Prober{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Run executes all configured probes concurrently and waits for them. It
// never returns an error: each probe failure is logged at debug level and
// leaves its result field nil.
func (p *Prober) Run(ctx context.Context, target *url.URL, settings *config.Settings) *Results {
	results := &Results{}
	if !settings.Probes.Enabled {
		return results
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results.Robots = p.checkRobots(ctx, target)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		results.Sitemap = p.checkSitemap(ctx, target)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		results.Backlinks = p.checkBacklinks(ctx, target, settings.Probes)
	}()

	if settings.Probes.PageSpeedAPIKey != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results.PageSpeed = p.checkPageSpeed(ctx, target, settings.Probes.PageSpeedAPIKey)
		}()
	}

	if settings.Probes.PlacesAPIKey != "" && settings.Categories.Local {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results.Listing = p.checkListing(ctx, target, settings.Probes.PlacesAPIKey)
		}()
	}

	wg.Wait()
	return results
}
