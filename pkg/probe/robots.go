package probe

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/yaklabco/seolint/internal/logging"
)

// RobotsResult describes whether the site serves a robots.txt.
type RobotsResult struct {
	Exists  bool   `json:"exists"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url"`
}

// robots.txt is small in practice; cap reads so a misconfigured server
// cannot balloon the report.
const maxRobotsBytes = 512 * 1024

func (p *Prober) checkRobots(ctx context.Context, target *url.URL) *RobotsResult {
	robotsURL := target.Scheme + "://" + target.Host + "/robots.txt"
	result := &RobotsResult{URL: robotsURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		p.logger.Debug("robots probe failed", logging.FieldProbe, "robots", logging.FieldError, err)
		return result
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("robots probe failed", logging.FieldProbe, "robots", logging.FieldError, err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBytes))
	if err != nil {
		p.logger.Debug("robots probe read failed", logging.FieldProbe, "robots", logging.FieldError, err)
		return result
	}

	result.Exists = true
	result.Content = string(body)
	return result
}
