// Package collect turns a URL into a page snapshot, either with a plain HTTP
// GET or through a headless browser that also measures web vitals.
package collect

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/page"
	"github.com/yaklabco/seolint/pkg/vitals"
)

// Result pairs a snapshot with the vitals observed while collecting it. A
// plain fetch leaves the vitals zero, which the vitals rules report as "not
// available".
type Result struct {
	Snapshot *page.Snapshot
	Vitals   vitals.Snapshot
}

// Fetch retrieves a page with a plain HTTP GET. No JavaScript runs, so no
// vitals or navigation timing are measured.
func Fetch(ctx context.Context, rawURL string, cfg config.Fetch) (*Result, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	// Response-start approximation: headers received. Good enough for the
	// TTFB grade on plain fetches.
	ttfb := float64(time.Since(start)) / float64(time.Millisecond)

	snap, err := page.New(rawURL, resp.Body, page.Timing{ResponseStart: ttfb})
	if err != nil {
		return nil, err
	}
	return &Result{Snapshot: snap}, nil
}
