package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"strings"

	"github.com/yaklabco/seolint/internal/logging"
	"github.com/yaklabco/seolint/pkg/config"
)

// BacklinkResult is a backlink profile estimate for the target's domain.
type BacklinkResult struct {
	TotalBacklinks   int    `json:"totalBacklinks"`
	ReferringDomains int    `json:"referringDomains"`
	DomainAuthority  int    `json:"domainAuthority"`
	Note             string `json:"note"`
}

const mockBacklinkNote = "This is mock data. Integrate with real SEO APIs for actual backlink data."

func (p *Prober) checkBacklinks(ctx context.Context, target *url.URL, probes config.Probes) *BacklinkResult {
	if probes.BacklinkProvider == config.BacklinkCustom && probes.BacklinkEndpoint != "" {
		result, err := p.fetchCustomBacklinks(ctx, target.Hostname(), probes.BacklinkEndpoint)
		if err != nil {
			p.logger.Debug("backlink probe failed",
				logging.FieldProbe, "backlinks", logging.FieldError, err)
			return nil
		}
		return result
	}
	return mockBacklinks(target.Hostname())
}

// mockBacklinks derives stable placeholder numbers from the hostname, so
// repeated audits of one site report the same figures. The value ranges
// mirror what a small site typically shows.
func mockBacklinks(host string) *BacklinkResult {
	h := fnv.New32a()
	h.Write([]byte(host))
	seed := h.Sum32()

	return &BacklinkResult{
		TotalBacklinks:   int(seed%1000) + 50,
		ReferringDomains: int(seed/1000%100) + 10,
		DomainAuthority:  int(seed/100000%40) + 30,
		Note:             mockBacklinkNote,
	}
}

func (p *Prober) fetchCustomBacklinks(ctx context.Context, host, endpoint string) (*BacklinkResult, error) {
	if !strings.Contains(endpoint, "http") {
		endpoint = "https://" + endpoint
	}
	reqURL := endpoint + "?domain=" + url.QueryEscape(host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build backlink request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query backlink provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backlink provider returned HTTP %d", resp.StatusCode)
	}

	var payload struct {
		TotalBacklinks   int    `json:"totalBacklinks"`
		ReferringDomains int    `json:"referringDomains"`
		DomainAuthority  int    `json:"domainAuthority"`
		Note             string `json:"note"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode backlink response: %w", err)
	}

	note := payload.Note
	if note == "" {
		note = "Custom provider"
	}
	return &BacklinkResult{
		TotalBacklinks:   payload.TotalBacklinks,
		ReferringDomains: payload.ReferringDomains,
		DomainAuthority:  payload.DomainAuthority,
		Note:             note,
	}, nil
}
