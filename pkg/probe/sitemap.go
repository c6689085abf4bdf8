package probe

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yaklabco/seolint/internal/logging"
)

// SitemapResult describes whether a sitemap was found at a conventional path.
type SitemapResult struct {
	Exists      bool     `json:"exists"`
	URL         string   `json:"url,omitempty"`
	CheckedURLs []string `json:"checkedUrls,omitempty"`
}

// Conventional sitemap locations, probed in order. The first 2xx wins.
var sitemapPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemaps.xml",
	"/sitemap1.xml",
}

func (p *Prober) checkSitemap(ctx context.Context, target *url.URL) *SitemapResult {
	origin := target.Scheme + "://" + target.Host

	checked := make([]string, 0, len(sitemapPaths))
	for _, path := range sitemapPaths {
		sitemapURL := origin + path
		checked = append(checked, sitemapURL)

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, sitemapURL, nil)
		if err != nil {
			p.logger.Debug("sitemap probe failed", logging.FieldProbe, "sitemap", logging.FieldError, err)
			continue
		}

		resp, err := p.client.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return &SitemapResult{Exists: true, URL: sitemapURL}
		}
	}

	return &SitemapResult{Exists: false, CheckedURLs: checked}
}
