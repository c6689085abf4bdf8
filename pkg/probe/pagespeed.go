package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/yaklabco/seolint/internal/logging"
)

// PageSpeedResult carries the lab metrics returned by PageSpeed Insights.
// Metric values are in milliseconds except CLS, which is unitless. A nil
// pointer means the metric was absent from the Lighthouse result.
type PageSpeedResult struct {
	PerformanceScore *int     `json:"performanceScore"`
	FCP              *float64 `json:"fcp"`
	LCP              *float64 `json:"lcp"`
	CLS              *float64 `json:"cls"`
	TBT              *float64 `json:"tbt"`
	SpeedIndex       *float64 `json:"si"`
	Interactive      *float64 `json:"interactive"`
}

// pageSpeedEndpoint is a variable so tests can point the probe at a stub.
var pageSpeedEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

func (p *Prober) checkPageSpeed(ctx context.Context, target *url.URL, apiKey string) *PageSpeedResult {
	result, err := p.runPageSpeed(ctx, target.String(), apiKey)
	if err != nil {
		p.logger.Debug("pagespeed probe failed",
			logging.FieldProbe, "pagespeed", logging.FieldError, err)
		return nil
	}
	return result
}

func (p *Prober) runPageSpeed(ctx context.Context, pageURL, apiKey string) (*PageSpeedResult, error) {
	params := url.Values{}
	params.Set("url", pageURL)
	params.Set("key", apiKey)
	params.Set("strategy", "mobile")
	params.Set("category", "PERFORMANCE")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		pageSpeedEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build pagespeed request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query pagespeed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pagespeed returned HTTP %d", resp.StatusCode)
	}

	var payload struct {
		LighthouseResult struct {
			Categories struct {
				Performance struct {
					Score *float64 `json:"score"`
				} `json:"performance"`
			} `json:"categories"`
			Audits map[string]struct {
				NumericValue *float64 `json:"numericValue"`
			} `json:"audits"`
		} `json:"lighthouseResult"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pagespeed response: %w", err)
	}

	result := &PageSpeedResult{}
	if s := payload.LighthouseResult.Categories.Performance.Score; s != nil {
		rounded := int(math.Round(*s * 100))
		result.PerformanceScore = &rounded
	}

	metric := func(id string) *float64 {
		if audit, ok := payload.LighthouseResult.Audits[id]; ok {
			return audit.NumericValue
		}
		return nil
	}
	result.FCP = metric("first-contentful-paint")
	result.LCP = metric("largest-contentful-paint")
	result.CLS = metric("cumulative-layout-shift")
	result.TBT = metric("total-blocking-time")
	result.SpeedIndex = metric("speed-index")
	result.Interactive = metric("interactive")

	return result, nil
}
